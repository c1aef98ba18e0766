package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
)

const (
	// StreamName is the JetStream stream for catalog events
	StreamName = "CATALOG"

	// StreamSubjects defines the subjects this stream listens to
	StreamSubjects = "catalog.events"

	// EventProductCreated through EventContactReceived are the event types
	// carried on the stream subject
	EventProductCreated  = "product.created"
	EventProductUpdated  = "product.updated"
	EventProductDeleted  = "product.deleted"
	EventContactReceived = "contact.received"

	// MaxAge bounds how long undelivered catalog events are kept.
	// Stale lifecycle notifications have no value.
	MaxAge = 24 * time.Hour
)

// StreamConfig holds the JetStream stream configuration
type StreamConfig struct {
	js     nats.JetStreamContext
	logger *logger.Logger
}

// NewStreamConfig creates a new stream configuration helper
func NewStreamConfig(js nats.JetStreamContext, log *logger.Logger) *StreamConfig {
	return &StreamConfig{
		js:     js,
		logger: log,
	}
}

// EnsureStream creates the JetStream stream for catalog events if it does
// not exist yet. File storage so notifications survive restarts.
func (s *StreamConfig) EnsureStream() error {
	stream, err := s.js.StreamInfo(StreamName)

	if errors.Is(err, nats.ErrStreamNotFound) {
		s.logger.WithFields(map[string]any{
			"stream":   StreamName,
			"subjects": StreamSubjects,
		}).Info("Creating JetStream stream")

		_, err = s.js.AddStream(&nats.StreamConfig{
			Name:        StreamName,
			Subjects:    []string{StreamSubjects},
			Retention:   nats.LimitsPolicy,
			Storage:     nats.FileStorage,
			Replicas:    1,
			MaxAge:      MaxAge,
			Discard:     nats.DiscardOld,
			Description: "Catalog lifecycle and contact-form events",
		})
		if err != nil {
			return fmt.Errorf("failed to create stream: %w", err)
		}

		s.logger.Info("JetStream stream created successfully")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get stream info: %w", err)
	}

	s.logger.WithFields(map[string]any{
		"stream":   stream.Config.Name,
		"messages": stream.State.Msgs,
		"bytes":    stream.State.Bytes,
	}).Info("JetStream stream already exists")

	return nil
}
