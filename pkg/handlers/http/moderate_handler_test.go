package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/ImageGuard/pkg/app/moderation/mocks"
	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newModerateApp(t *testing.T, service *mocks.Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/v1/moderate", NewModerateHandler(logrus.New(), service).Handle)
	return app
}

func TestModerateHandler_Rejected(t *testing.T) {
	service := mocks.NewService(t)
	id := int64(42)
	service.EXPECT().
		AnalyzePost(mock.Anything, domain.Post{
			Raw:        "![x](/uploads/x.png)",
			UserID:     7,
			TopicID:    99,
			ID:         &id,
			PostNumber: 1,
			TopicSlug:  "welcome",
			TopicTitle: "Welcome",
		}).
		Return(domain.Reject()).
		Once()
	app := newModerateApp(t, service)

	body, err := json.Marshal(map[string]interface{}{
		"raw":         "![x](/uploads/x.png)",
		"user_id":     7,
		"topic_id":    99,
		"id":          42,
		"post_number": 1,
		"topic_slug":  "welcome",
		"topic_title": "Welcome",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/v1/moderate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, map[string]interface{}{"approved": false}, out)
}

func TestModerateHandler_Approved(t *testing.T) {
	service := mocks.NewService(t)
	service.EXPECT().AnalyzePost(mock.Anything, mock.Anything).Return(domain.Approve()).Once()
	app := newModerateApp(t, service)

	req := httptest.NewRequest("POST", "/v1/moderate",
		bytes.NewBufferString(`{"raw":"hi","topic_id":1,"post_number":2,"topic_slug":"s"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out domain.Outcome
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Approved)
}

func TestModerateHandler_InvalidPayload(t *testing.T) {
	service := mocks.NewService(t)
	app := newModerateApp(t, service)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "malformed json", body: `{"raw":`, want: ErrInvalidJsonPayload},
		{name: "missing slug", body: `{"topic_id":1,"post_number":1}`, want: "topic_slug is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/v1/moderate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			var out map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, tt.want, out["error"])
		})
	}
	service.AssertNotCalled(t, "AnalyzePost", mock.Anything, mock.Anything)
}

func TestGetVersionHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/version", NewGetVersionHandler(logrus.New()).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/version", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ImageGuard", out["app_name"])
	assert.NotEmpty(t, out["go_version"])
}
