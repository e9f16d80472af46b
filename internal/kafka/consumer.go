// Package kafka ingests customer messages from a topic into the pipeline.
// The message key is the session id; the value is the raw message text.
package kafka

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/opsdesk/support-agent-pipeline/internal/coordinator"
	"github.com/opsdesk/support-agent-pipeline/internal/session"
	"github.com/opsdesk/support-agent-pipeline/internal/workers"
)

// defaultSessionID is used for messages produced without a key.
const defaultSessionID = "default-session"

type Consumer struct {
	reader   *kafka.Reader
	coord    *coordinator.Coordinator
	sessions session.Store
	pool     *workers.Pool
}

func NewConsumer(brokers []string, topic, groupID string, coord *coordinator.Coordinator, sessions session.Store) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})

	return &Consumer{
		reader:   reader,
		coord:    coord,
		sessions: sessions,
		pool:     workers.NewPool(8),
	}
}

// Start consumes until ctx is cancelled or the reader fails. Messages are
// dispatched onto the worker pool keyed by session id, so turns within a
// session are processed in order.
func (c *Consumer) Start(ctx context.Context) error {
	defer c.reader.Close()
	defer c.pool.Stop()

	log.Info().Str("topic", c.reader.Config().Topic).Msg("kafka consumer started")

	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		sessionID := defaultSessionID
		if len(m.Key) > 0 {
			sessionID = string(m.Key)
		}
		text := string(m.Value)

		c.pool.Dispatch(sessionID, func() {
			c.process(ctx, sessionID, text)
		})
	}
}

func (c *Consumer) process(ctx context.Context, sessionID, text string) {
	state, err := c.sessions.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		state = coordinator.NewState(sessionID)
	} else if err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("failed to load session")
		return
	}

	result := c.coord.Process(state, text)

	if err := c.sessions.Save(ctx, state); err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("failed to save session")
		return
	}

	evt := log.Info()
	if result.Escalated {
		evt = log.Warn()
	}
	evt.Str("session", sessionID).
		Str("intent", result.Intent).
		Str("sentiment", string(result.Sentiment)).
		Bool("escalated", result.Escalated).
		Str("reply", result.Reply).
		Msg("consumed message")
}
