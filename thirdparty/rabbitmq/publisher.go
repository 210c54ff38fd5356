package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/rabbitmq/amqp091-go"
)

// Publisher sends ledger events to the topic exchange.
type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

type ReservationCommittedMessage struct {
	EventID              string    `json:"event_id"`
	OrderNumber          string    `json:"order_number"`
	ProductCode          string    `json:"product_code"`
	SourceWarehouse      string    `json:"source_warehouse"`
	SourceLocation       string    `json:"source_location"`
	ReservationWarehouse string    `json:"reservation_warehouse"`
	ReservationLocation  string    `json:"reservation_location"`
	Pcs                  int       `json:"pcs"`
	ReservedPcs          int       `json:"reserved_pcs"`
	OccurredAt           time.Time `json:"occurred_at"`
}

type StockDepletedMessage struct {
	EventID     string    `json:"event_id"`
	ProductCode string    `json:"product_code"`
	Warehouse   string    `json:"warehouse"`
	Location    string    `json:"location"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func dsn(host string, port int, user, password string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, err := amqp091.Dial(dsn(host, port, user, password))
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		constant.EventExchange, // name
		"topic",                // type
		true,                   // durable
		false,                  // auto-delete
		false,                  // internal
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishReservationCommitted(ctx context.Context, msg ReservationCommittedMessage) error {
	if msg.EventID == "" {
		msg.EventID = uuid.NewString()
	}
	if msg.OccurredAt.IsZero() {
		msg.OccurredAt = time.Now().UTC()
	}
	return p.publish(ctx, constant.EventReservationCommitted, msg.EventID, msg.OccurredAt, msg)
}

func (p *Publisher) PublishStockDepleted(ctx context.Context, msg StockDepletedMessage) error {
	if msg.EventID == "" {
		msg.EventID = uuid.NewString()
	}
	if msg.OccurredAt.IsZero() {
		msg.OccurredAt = time.Now().UTC()
	}
	return p.publish(ctx, constant.EventStockDepleted, msg.EventID, msg.OccurredAt, msg)
}

func (p *Publisher) publish(ctx context.Context, routingKey, messageID string, ts time.Time, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(ctx,
		constant.EventExchange, // exchange
		routingKey,             // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    messageID,
			Timestamp:    ts,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
