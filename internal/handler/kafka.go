package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type StaleMarker interface {
	MarkStale(ctx context.Context, ev entities.OrderCreated) int
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("handler", "kafka_publisher")),
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

// OrderCreated publishes the event keyed by order id.
func (p *kafkaPublisher) OrderCreated(ctx context.Context, ev entities.OrderCreated) error {
	value, err := json.Marshal(OrderCreatedEntityToJSON(ev))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: value,
	})
	if err != nil {
		eventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to write event: %w", err)
	}

	eventsPublished.WithLabelValues("ok").Inc()
	p.logger.DebugContext(ctx, "order created event published", slog.Int64("order_id", ev.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	marker   StaleMarker
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, marker StaleMarker) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: newValidator(),
		marker:   marker,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleOrderCreated(ctx, m); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleOrderCreated(ctx context.Context, m kafka.Message) error {
	var ev OrderCreatedEvent
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if err := h.validate.Struct(ev); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	marked := h.marker.MarkStale(ctx, OrderCreatedJSONToEntity(ev))
	eventsProcessed.Inc()
	staleSessions.Add(float64(marked))
	if marked > 0 {
		h.logger.Debug("order forms flagged as stale",
			slog.Int64("order_id", ev.OrderID),
			slog.Int("sessions", marked),
		)
	}
	return nil
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
