// Package events publishes notifications about records created by the service.
package events

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

const (
	StatementCreated = "statement.created"
	LoadCreated      = "load.created"
)

type Event struct {
	Type       string    `json:"type"`
	UserID     int       `json:"user_id"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// LogPublisher writes events to the log when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	zap.L().Info("event",
		zap.String("type", event.Type),
		zap.Int("userID", event.UserID),
		zap.String("recordID", event.RecordID),
		zap.Time("occurredAt", event.OccurredAt),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
