package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

// produceCmd sends a single message onto the ingestion topic, keyed by
// session id. Handy for exercising the consumer without a real producer.
func produceCmd() *cobra.Command {
	var (
		brokers   string
		topic     string
		sessionID string
	)

	cmd := &cobra.Command{
		Use:   "produce [text]",
		Short: "Send one customer message to the Kafka ingestion topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &kafka.Writer{
				Addr:     kafka.TCP(strings.Split(brokers, ",")...),
				Topic:    topic,
				Balancer: &kafka.LeastBytes{},
			}

			err := w.WriteMessages(context.Background(), kafka.Message{
				Key:   []byte(sessionID),
				Value: []byte(strings.Join(args, " ")),
			})
			if err != nil {
				return fmt.Errorf("failed to write message: %w", err)
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("failed to close writer: %w", err)
			}

			fmt.Println("message sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&brokers, "brokers", "localhost:9092", "comma-separated Kafka brokers")
	cmd.Flags().StringVar(&topic, "topic", "conversations", "ingestion topic")
	cmd.Flags().StringVar(&sessionID, "session", "default-session", "session id used as the message key")

	return cmd
}
