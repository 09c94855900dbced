package service

import (
	"context"
	"time"
)

// AccountEventType names what happened to an account.
type AccountEventType string

const (
	AccountEventLoginCompleted AccountEventType = "login.completed"
	AccountEventBonusGranted   AccountEventType = "bonus.granted"
	AccountEventLoggedOut      AccountEventType = "logout"
)

// AccountEvent is emitted for downstream analytics and notifications.
type AccountEvent struct {
	RequestID         string           `json:"request_id,omitempty"` // For distributed tracing
	EventID           string           `json:"event_id"`
	Type              AccountEventType `json:"type"`
	UserID            int64            `json:"user_id"`
	OccurredAt        time.Time        `json:"occurred_at"`
	TempPremiumExpiry *time.Time       `json:"temp_premium_expiry,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
