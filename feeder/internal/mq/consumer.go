package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	pkglog "github.com/jaconsta/rag-gallery/pkg/log"
)

// ThumbnailPrefix marks objects the feeder itself wrote into the
// processed bucket; notifications for these keys are self-events and
// must be dropped to avoid reprocessing them (spec §4.3).
const ThumbnailPrefix = "thumbnail/"

// Handler receives change events forwarded by the consumer. It must not
// block for long: the consumer hands events off to it one at a time,
// in a detached context so shutdown doesn't cancel in-flight work.
type Handler interface {
	HandleChangeEvent(ctx context.Context, ev *ChangeEvent) error
}

// Consumer subscribes to the broker topic carrying object-store change
// notifications and forwards parsed, filtered events to a Handler.
// Grounded on resize-service's kafka consumer: a poll loop tolerating
// kafka.ErrTimedOut, detaching the processing context from shutdown
// cancellation so in-flight records complete.
type Consumer struct {
	consumer *kafka.Consumer
	topic    string
	handler  Handler
	doneCh   chan struct{}
}

func NewConsumer(brokers, topic, groupID string, handler Handler) (*Consumer, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  brokers,
		"group.id":           groupID,
		"auto.offset.reset":  "latest",
		"enable.auto.commit": true,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}

	return &Consumer{
		consumer: c,
		topic:    topic,
		handler:  handler,
		doneCh:   make(chan struct{}),
	}, nil
}

// Start subscribes and begins the poll loop in a background goroutine.
// Only a Subscribe failure is returned as an error. Receive errors other
// than poll timeouts, and errors from the handler, are logged and the
// loop continues; they do not stop the consumer.
func (c *Consumer) Start(ctx context.Context) error {
	if err := c.consumer.Subscribe(c.topic, nil); err != nil {
		return fmt.Errorf("subscribe to topic %s: %w", c.topic, err)
	}

	l := pkglog.L()
	l.Info().Str("topic", c.topic).Msg("change-event consumer started")

	go c.consumeLoop(ctx)
	return nil
}

func (c *Consumer) consumeLoop(ctx context.Context) {
	l := pkglog.L()
	defer close(c.doneCh)

	for {
		select {
		case <-ctx.Done():
			l.Info().Msg("change-event consumer shutting down")
			return
		default:
			msg, err := c.consumer.ReadMessage(100 * time.Millisecond)
			if err != nil {
				if kerr, ok := err.(kafka.Error); ok && kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				l.Error().Err(err).Msg("kafka consumer error")
				continue
			}
			c.processMessage(context.WithoutCancel(ctx), msg)
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg *kafka.Message) {
	l := pkglog.L()

	var raw minioEventRaw
	if err := json.Unmarshal(msg.Value, &raw); err != nil {
		l.Error().Err(err).Msg("failed to unmarshal change event")
		return
	}

	for _, rec := range raw.Records {
		if rec.S3.Object.Key == "" {
			l.Warn().Msg("change event record missing key, skipping")
			continue
		}

		key, err := url.QueryUnescape(rec.S3.Object.Key)
		if err != nil {
			l.Error().Err(err).Str("raw_key", rec.S3.Object.Key).Msg("failed to percent-decode key")
			continue
		}

		if strings.HasPrefix(key, ThumbnailPrefix) {
			continue // self-event
		}

		ev := &ChangeEvent{
			Bucket:      rec.S3.Bucket.Name,
			Key:         key,
			ContentType: rec.S3.Object.ContentType,
			Size:        rec.S3.Object.Size,
			EventName:   rec.EventName,
			EventTime:   rec.EventTime,
		}

		if err := c.handler.HandleChangeEvent(ctx, ev); err != nil {
			l.Error().Err(err).Str("key", key).Msg("failed to handle change event")
		}
	}
}

// Close waits for the consume loop to drain, then closes the client.
// ctx passed to Start must already have been cancelled.
func (c *Consumer) Close() error {
	<-c.doneCh
	if err := c.consumer.Close(); err != nil {
		return fmt.Errorf("close kafka consumer: %w", err)
	}
	return nil
}
