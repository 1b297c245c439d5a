package auditlogs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Sink delivers audit events to a backend.
type Sink interface {
	Emit(ctx context.Context, event Event) error
	Close() error
}

type Service interface {
	Emit(ctx context.Context, event Event)
	Close() error
}

type service struct {
	enabled bool
	logger  *logrus.Logger
	sink    Sink
	now     func() time.Time
}

func NewService(sink Sink, logger *logrus.Logger, enabled bool) Service {
	return &service{
		enabled: enabled,
		logger:  logger,
		sink:    sink,
		now:     time.Now,
	}
}

// Emit never fails the caller; delivery errors are only logged.
func (s *service) Emit(ctx context.Context, event Event) {
	if !s.enabled || s.sink == nil {
		return
	}
	if event.Event.Category == "" {
		event.Event.Category = CategoryContentSecurity
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now().UTC()
	}

	if err := s.sink.Emit(ctx, event); err != nil {
		s.logger.Errorf("failed to emit audit event: %v", err)
	}
}

func (s *service) Close() error {
	if s.sink != nil {
		return s.sink.Close()
	}
	return nil
}

// LogSink writes audit events to the structured log.
type LogSink struct {
	logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (l *LogSink) Emit(_ context.Context, event Event) error {
	l.logger.WithFields(logrus.Fields{
		"audit_type":   event.Event.Type,
		"audit_status": event.Event.Status,
		"target_type":  event.Target.Type,
		"target_id":    event.Target.ID,
		"risk_level":   event.Context.RiskLevel,
		"category":     event.Context.Failure,
	}).Info(event.Event.Description)
	return nil
}

func (l *LogSink) Close() error {
	return nil
}
