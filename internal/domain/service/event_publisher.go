package service

import (
	"context"
)

// JobEvent announces a persisted notification job to the notifier worker
type JobEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	JobID     string `json:"job_id"`
	Kind      string `json:"kind"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishJobEvent publishes a job event for async delivery
	PublishJobEvent(ctx context.Context, event *JobEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
