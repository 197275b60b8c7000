package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends reservation status events to the broker. A nil
// Publisher is valid and drops every event, so the server can run
// without a broker configured.
type Publisher struct {
	url    string
	logger *slog.Logger
}

// NewPublisher returns a Publisher for the given broker URL. An empty
// URL yields a nil Publisher.
func NewPublisher(url string, logger *slog.Logger) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url, logger: logger}
}

// PublishStatusChange publishes a ReservationStatusEvent to the
// reservation.status queue. Failures are logged and returned so the
// caller can ignore them; a broker outage must never fail the HTTP
// request that triggered the event. Messages are marked persistent.
func (p *Publisher) PublishStatusChange(ctx context.Context, event ReservationStatusEvent) error {
	if p == nil {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.logger.Warn("rabbitmq dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Warn("rabbitmq channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(StatusQueueName, true, false, false, false, nil); err != nil {
		p.logger.Warn("rabbitmq queue declare failed", "error", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("rabbitmq marshal event failed", "error", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", StatusQueueName, false, false, pub); err != nil {
		p.logger.Warn("rabbitmq publish failed", "error", err)
		return err
	}
	return nil
}
