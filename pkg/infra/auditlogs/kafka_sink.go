package auditlogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

const flushTimeoutMs = 5000

type KafkaConfig struct {
	Host  string `mapstructure:"host"`
	Port  string `mapstructure:"port"`
	Topic string `mapstructure:"topic"`
}

func DecodeKafkaConfig(settings map[string]interface{}) (KafkaConfig, error) {
	var conf KafkaConfig
	if err := mapstructure.Decode(settings, &conf); err != nil {
		return KafkaConfig{}, fmt.Errorf("invalid kafka config: %w", err)
	}
	return conf, conf.Validate()
}

func (c KafkaConfig) Validate() error {
	if c.Host == "" {
		return errors.New("kafka host is required")
	}
	if c.Port == "" {
		return errors.New("kafka port is required")
	}
	if c.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}

type producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Events() chan kafka.Event
	Flush(timeoutMs int) int
	Close()
}

// KafkaSink publishes audit events without waiting for delivery reports;
// failed deliveries surface in the log.
type KafkaSink struct {
	cfg      KafkaConfig
	producer producer
	logger   *logrus.Logger
	done     chan struct{}
}

func NewKafkaSink(cfg KafkaConfig, logger *logrus.Logger) (*KafkaSink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return newKafkaSink(cfg, p, logger), nil
}

func newKafkaSink(cfg KafkaConfig, p producer, logger *logrus.Logger) *KafkaSink {
	s := &KafkaSink{
		cfg:      cfg,
		producer: p,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go s.drainEvents()
	return s
}

func (s *KafkaSink) drainEvents() {
	defer close(s.done)
	for e := range s.producer.Events() {
		m, ok := e.(*kafka.Message)
		if !ok {
			continue
		}
		if m.TopicPartition.Error != nil {
			s.logger.WithError(m.TopicPartition.Error).Error("audit event delivery failed")
		}
	}
}

func (s *KafkaSink) Emit(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	err = s.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &s.cfg.Topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.Target.ID),
		Value:          data,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	if pending := s.producer.Flush(flushTimeoutMs); pending > 0 {
		s.logger.Warnf("%d audit events not delivered before shutdown", pending)
	}
	s.producer.Close()
	<-s.done
	return nil
}
