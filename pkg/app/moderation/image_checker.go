package moderation

import (
	"context"
	"time"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/ImageGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const ImageCheckerName = "image"

//go:generate mockery --name=ImageClassifier --dir=. --output=./mocks --filename=image_classifier_mock.go --case=underscore --with-expecter
type ImageClassifier interface {
	ClassifyImage(ctx context.Context, imageURL string) (domain.Classification, error)
}

// ImageChecker classifies images one at a time, in order, and stops at the
// first image the allow-list rejects.
type ImageChecker struct {
	classifier ImageClassifier
	allowList  AllowList
	logger     *logrus.Logger
}

func NewImageChecker(classifier ImageClassifier, allowList AllowList, logger *logrus.Logger) *ImageChecker {
	return &ImageChecker{
		classifier: classifier,
		allowList:  allowList,
		logger:     logger,
	}
}

func (c *ImageChecker) Name() string {
	return ImageCheckerName
}

func (c *ImageChecker) Check(ctx context.Context, content Content) (domain.Outcome, error) {
	for _, imageURL := range content.ImageURLs {
		if err := ctx.Err(); err != nil {
			return domain.Outcome{}, &ImageError{ImageURL: imageURL, Err: err}
		}

		approved, err := c.checkImage(ctx, imageURL)
		if err != nil {
			return domain.Outcome{}, &ImageError{ImageURL: imageURL, Err: err}
		}
		if !approved {
			return domain.Reject(), nil
		}
	}
	return domain.Approve(), nil
}

func (c *ImageChecker) checkImage(ctx context.Context, imageURL string) (bool, error) {
	entry := c.logger.WithField("image_url", truncateURL(imageURL))
	entry.Debug("checking image")

	start := time.Now()
	result, err := c.classifier.ClassifyImage(ctx, imageURL)
	elapsed := float64(time.Since(start).Milliseconds())
	if err != nil {
		prometheus.ClassifierLatency.WithLabelValues("error").Observe(elapsed)
		return false, err
	}
	prometheus.ClassifierLatency.WithLabelValues("ok").Observe(elapsed)
	prometheus.RiskLevelsTotal.WithLabelValues(result.RiskLevel.String()).Inc()

	approved := c.allowList.Decide(result.RiskLevel)
	entry = entry.WithFields(logrus.Fields{
		"risk_level":     result.RiskLevel.String(),
		"allowed_levels": c.allowList.String(),
	})
	entry.Debug("risk level evaluated against allow list")

	if !approved {
		entry.Warn("image rejected by risk level policy")
	}
	return approved, nil
}
