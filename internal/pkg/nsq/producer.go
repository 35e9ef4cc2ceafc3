package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"

	"github.com/musafir-app/musafir/internal/pkg/logger"
)

// Producer publishes JSON-encoded events to NSQ.
type Producer struct {
	producer *nsq.Producer
	logger   *logger.ZapLogger
}

// NewProducer connects a producer to the given nsqd address.
func NewProducer(address string, l *logger.ZapLogger) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create nsq producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping nsqd at %s: %w", address, err)
	}

	return &Producer{producer: producer, logger: l}, nil
}

// Publish serializes the message to JSON and publishes it to the topic.
func (p *Producer) Publish(topic string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message for topic %s: %w", topic, err)
	}

	if err := p.producer.Publish(topic, payload); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}

	p.logger.Debug("Published event",
		logger.String("topic", topic),
		logger.Int("bytes", len(payload)))
	return nil
}

// Stop gracefully stops the producer.
func (p *Producer) Stop() {
	p.producer.Stop()
}
