package event

import (
	"context"
	"time"

	"github.com/Maou3434/TOTS/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter
}

// ResilientPublisher wraps an event Bus with background retries and a
// dead-letter file for events that never go through. Publish always returns
// nil once the event is accepted; callers are decoupled from the retries.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelaySeconds * time.Second
	}
	return &ResilientPublisher{inner: inner, config: config}
}

// Publish attempts to publish the event, falling back to a background retry
// loop on failure.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn("event publish failed, retrying in background",
		"event_type", event.Type,
		"error", err,
		"max_retries", p.config.MaxRetries)

	go p.retryLoop(event, err)

	return nil
}

// retryLoop runs on a detached context: the request that produced the event
// may be long gone by the time a retry lands.
func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		if err := p.inner.Publish(ctx, event); err != nil {
			lastErr = err
			log.Warn("event retry failed",
				"event_type", event.Type,
				"attempt", attempt,
				"error", err)
			continue
		}

		log.Info("event published after retry",
			"event_type", event.Type,
			"attempt", attempt)
		return
	}

	if p.config.DeadLetter != nil {
		if err := p.config.DeadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
			log.Error("failed to write dead letter", "event_type", event.Type, "error", err)
		}
		return
	}
	log.Error("event dropped after retries", "event_type", event.Type, "error", lastErr)
}

// CalculateRetryDelay implements exponential backoff: base, 2x, 4x, 8x...
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
