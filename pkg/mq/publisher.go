package mq

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "events"
)

// Channel is the part of *amqp091.Channel the publisher relies on.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := declareExchange(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &Publisher{
		conn:    conn,
		channel: ch,
	}, nil
}

// NewPublisherWithChannel wraps an already prepared channel; the exchange must exist.
func NewPublisherWithChannel(ch Channel) *Publisher {
	return &Publisher{
		channel: ch,
	}
}

func declareExchange(ch *amqp091.Channel) error {
	return ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
}

func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Publish sends payload as a persistent JSON message to the events exchange.
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	return p.channel.PublishWithContext(
		ctx,
		ExchangeName,
		routingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
		},
	)
}
