// Package service defines interfaces for infrastructure-backed services
// consumed by the use case layer.
package service

import (
	"context"
)

// NudgeEvent represents a nudge published for asynchronous fan-out processing.
type NudgeEvent struct {
	RequestID   string   `json:"request_id,omitempty"` // For distributed tracing
	NudgeID     string   `json:"nudge_id"`
	HouseholdID string   `json:"household_id"`
	Type        string   `json:"type"`
	Priority    string   `json:"priority"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	TargetUsers []string `json:"target_users"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNudgeEvent publishes a nudge event for async processing
	PublishNudgeEvent(ctx context.Context, event *NudgeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
