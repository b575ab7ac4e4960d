package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"vitacoin/pkg/config"
	"vitacoin/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	LedgerQueueName  = "ledger_events"
	LedgerExchange   = "ledger"
	LedgerRoutingKey = "transaction_created"
)

// LedgerEvent is published after every committed ledger transaction so that
// downstream consumers (dashboard feeds, notifications) can react without
// polling the transaction log.
type LedgerEvent struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Amount        int       `json:"amount"`
	Balance       int       `json:"balance"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		LedgerExchange, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		LedgerQueueName, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		LedgerQueueName,  // queue name
		LedgerRoutingKey, // routing key
		LedgerExchange,   // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishLedgerEvent publishes a committed ledger transaction to the exchange.
func (c *Client) PublishLedgerEvent(event LedgerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	err = c.channel.Publish(
		LedgerExchange,   // exchange
		LedgerRoutingKey, // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish ledger event for transaction %s: %v", event.TransactionID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// ConsumeLedgerEvents consumes ledger events from the queue.
func (c *Client) ConsumeLedgerEvents(handler func(event LedgerEvent) error) error {
	msgs, err := c.channel.Consume(
		LedgerQueueName, // queue
		"",              // consumer
		false,           // auto-ack (we'll manually ack after processing)
		false,           // exclusive
		false,           // no-local
		false,           // no-wait
		nil,             // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", LedgerQueueName)

	go func() {
		for msg := range msgs {
			var event LedgerEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal ledger event: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false) // Reject and don't requeue
				continue
			}

			if err := handler(event); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed for transaction %s: %v", event.TransactionID, err)
				msg.Nack(false, true) // Reject and requeue
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}
