package moderation

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/ImageGuard/pkg/infra/auditlogs"
	"github.com/NeuralTrust/ImageGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=moderation_service_mock.go --case=underscore --with-expecter
type Service interface {
	// Analyze never returns an error: anything that prevents a decision
	// approves the content.
	Analyze(ctx context.Context, req domain.Request) domain.Outcome
	AnalyzePost(ctx context.Context, post domain.Post) domain.Outcome
}

type Option func(*service)

func WithRenderer(renderer Renderer) Option {
	return func(s *service) {
		s.renderer = renderer
	}
}

func WithAudit(audit auditlogs.Service) Option {
	return func(s *service) {
		s.audit = audit
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	baseURL   string
	renderer  Renderer
	extractor *Extractor
	checkers  []Checker
	audit     auditlogs.Service
	logger    *logrus.Logger
	now       func() time.Time
}

// NewService builds the orchestrator. Checkers run in the given order and the
// first rejection wins.
func NewService(baseURL string, checkers []Checker, logger *logrus.Logger, opts ...Option) Service {
	s := &service{
		baseURL:   baseURL,
		renderer:  NewMarkdownRenderer(),
		extractor: NewExtractor(baseURL),
		checkers:  checkers,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) AnalyzePost(ctx context.Context, post domain.Post) domain.Outcome {
	return s.Analyze(ctx, domain.NewRequestFromPost(post, s.baseURL, s.now()))
}

func (s *service) Analyze(ctx context.Context, req domain.Request) (outcome domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = s.failOpen(ctx, req, &FailureError{
				Category: CategoryUnknown,
				Err:      fmt.Errorf("panic recovered: %v", r),
			})
		}
	}()

	outcome, err := s.analyze(ctx, req)
	if err != nil {
		return s.failOpen(ctx, req, Classify(err))
	}
	prometheus.ModerationRequestsTotal.WithLabelValues(prometheus.OutcomeLabel(outcome.Approved)).Inc()
	return outcome
}

func (s *service) analyze(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	html, err := s.renderer.Render(ctx, req.Content)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("%w: render: %w", domain.ErrExtraction, err)
	}
	urls, err := s.extractor.ImageURLs(html)
	if err != nil {
		return domain.Outcome{}, err
	}

	content := Content{Request: req, HTML: html, ImageURLs: urls}
	for _, checker := range s.checkers {
		outcome, err := checker.Check(ctx, content)
		if err != nil {
			return domain.Outcome{}, fmt.Errorf("%s checker: %w", checker.Name(), err)
		}
		prometheus.CheckerDecisionsTotal.WithLabelValues(checker.Name(), prometheus.OutcomeLabel(outcome.Approved)).Inc()
		if !outcome.Approved {
			s.emitRejected(ctx, req, checker.Name())
			return outcome, nil
		}
	}
	return domain.Approve(), nil
}

func (s *service) failOpen(ctx context.Context, req domain.Request, failure *FailureError) domain.Outcome {
	fields := logrus.Fields{
		"category":   string(failure.Category),
		"content_id": req.ContentID,
	}
	var imageErr *ImageError
	if errors.As(failure, &imageErr) {
		fields["image_url"] = truncateURL(imageErr.ImageURL)
	}
	s.logger.WithFields(fields).WithError(failure.Err).Error("moderation failed, approving content")

	prometheus.FailOpenTotal.WithLabelValues(string(failure.Category)).Inc()
	prometheus.ModerationRequestsTotal.WithLabelValues(prometheus.OutcomeApproved).Inc()

	if s.audit != nil {
		event := s.event(req, auditlogs.EventTypeFailOpen, auditlogs.StatusApproved, "content approved without a risk decision")
		event.Event.ErrorMessage = failure.Err.Error()
		event.Context.Failure = string(failure.Category)
		if imageErr != nil {
			event.Target.Type = auditlogs.TargetTypeImage
			event.Target.URL = imageErr.ImageURL
		}
		s.audit.Emit(context.WithoutCancel(ctx), event)
	}
	return domain.Approve()
}

func (s *service) emitRejected(ctx context.Context, req domain.Request, checker string) {
	if s.audit == nil {
		return
	}
	event := s.event(req, auditlogs.EventTypeContentRejected, auditlogs.StatusRejected, "content rejected by "+checker+" checker")
	event.Context.Checker = checker
	s.audit.Emit(context.WithoutCancel(ctx), event)
}

func (s *service) event(req domain.Request, eventType, status, description string) auditlogs.Event {
	return auditlogs.Event{
		Event: auditlogs.EventInfo{
			Type:        eventType,
			Category:    auditlogs.CategoryContentSecurity,
			Description: description,
			Status:      status,
		},
		Target: auditlogs.Target{
			Type: auditlogs.TargetTypePost,
			ID:   req.ContentID,
			Name: req.TopicTitle,
			URL:  req.ContentURL,
		},
		Context: auditlogs.Context{
			AuthorID:  req.AuthorID,
			ContextID: req.ContextID,
		},
	}
}
