package http

import (
	appModeration "github.com/NeuralTrust/ImageGuard/pkg/app/moderation"
	"github.com/NeuralTrust/ImageGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateHandler struct {
	logger  *logrus.Logger
	service appModeration.Service
}

func NewModerateHandler(logger *logrus.Logger, service appModeration.Service) Handler {
	return &moderateHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Moderate a post
// @Description Checks every image embedded in the post against the configured risk policy
// @Tags Moderation
// @Accept json
// @Produce json
// @Param payload body request.ModerateRequest true "Post to moderate"
// @Success 200 {object} moderation.Outcome "Moderation outcome"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /v1/moderate [post]
func (h *moderateHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	outcome := h.service.AnalyzePost(c.UserContext(), req.Post())
	return c.Status(fiber.StatusOK).JSON(outcome)
}
