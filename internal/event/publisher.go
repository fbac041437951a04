package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"creativestyle/internal/logger"
	"creativestyle/internal/model"
)

type Publisher interface {
	PublishSubmissionStarted(ctx context.Context, submissionID string) error
	PublishSubmissionCompleted(ctx context.Context, submissionID string) error
	PublishResultsGenerated(ctx context.Context, submissionID string, result *model.Result) error
	Close() error
}

type EventPublisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	enabled      bool
	log          *logger.Logger
}

// NewEventPublisher connects to RabbitMQ and declares a durable topic exchange.
// An empty URI yields a disabled publisher whose calls are no-ops.
func NewEventPublisher(rabbitURI, exchangeName string, log *logger.Logger) (*EventPublisher, error) {
	if rabbitURI == "" {
		log.Warn("RabbitMQ URI is empty, event publishing is disabled")
		return &EventPublisher{enabled: false, log: log}, nil
	}

	conn, err := amqp091.Dial(rabbitURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &EventPublisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		enabled:      true,
		log:          log,
	}, nil
}

// Enabled reports whether events actually leave the process
func (p *EventPublisher) Enabled() bool {
	return p.enabled
}

func (p *EventPublisher) publishEvent(ctx context.Context, routingKey string, event any) error {
	if !p.enabled {
		p.log.Debug("event publishing disabled, skipping", "routing_key", routingKey)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		pubCtx,
		p.exchangeName, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.log.Debug("published event", "routing_key", routingKey)
	return nil
}

func (p *EventPublisher) PublishSubmissionStarted(ctx context.Context, submissionID string) error {
	e := NewSubmissionEvent(EventTypeSubmissionStarted, submissionID)
	return p.publishEvent(ctx, string(e.Type), e)
}

func (p *EventPublisher) PublishSubmissionCompleted(ctx context.Context, submissionID string) error {
	e := NewSubmissionEvent(EventTypeSubmissionCompleted, submissionID)
	return p.publishEvent(ctx, string(e.Type), e)
}

func (p *EventPublisher) PublishResultsGenerated(ctx context.Context, submissionID string, result *model.Result) error {
	e := NewResultsEvent(submissionID, result)
	return p.publishEvent(ctx, string(e.Type), e)
}

func (p *EventPublisher) Close() error {
	if !p.enabled {
		return nil
	}

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.log.Warn("error closing RabbitMQ channel", "error", err)
		}
	}

	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("error closing RabbitMQ connection: %w", err)
		}
	}

	return nil
}
