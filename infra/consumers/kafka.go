package consumers

import (
	"context"
	"errors"
	"strings"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/giovaniif/ordersystem/infra/metrics"
	protocols "github.com/giovaniif/ordersystem/protocols"
)

// Dispatcher processes one tokenized command record.
type Dispatcher interface {
	Process(fields []string) error
}

// Reader is the subset of kafka.Reader the consumer needs.
type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

// CommandConsumer feeds Kafka messages into the command dispatcher.
// Each message value is one whitespace-tokenized command line.
type CommandConsumer struct {
	reader     Reader
	dispatcher Dispatcher
	cache      protocols.ReportCache
	logger     *zap.Logger
}

func NewCommandConsumer(reader Reader, dispatcher Dispatcher, cache protocols.ReportCache, logger *zap.Logger) *CommandConsumer {
	return &CommandConsumer{
		reader:     reader,
		dispatcher: dispatcher,
		cache:      cache,
		logger:     logger,
	}
}

// Start reads until the context is canceled. Parse and integrity
// errors are logged and counted; the feed keeps running.
func (c *CommandConsumer) Start(ctx context.Context) error {
	c.logger.Info("command consumer started, waiting for messages")

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			c.logger.Error("failed to read command message", zap.Error(err))
			continue
		}

		line := strings.TrimSpace(string(msg.Value))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		if err := c.dispatcher.Process(fields); err != nil {
			c.logger.Error("failed to process command",
				zap.String("command", fields[0]),
				zap.Error(err),
			)
			metrics.ObserveCommand(fields[0], "error")
			continue
		}
		metrics.ObserveCommand(fields[0], "ok")
		if c.cache != nil {
			if err := c.cache.Invalidate(ctx); err != nil {
				c.logger.Warn("failed to invalidate report cache", zap.Error(err))
			}
		}
	}

	c.logger.Info("command consumer stopped")
	return nil
}
