package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/manual"
	"museum-booking/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ManualBookingCreatedEvent is what operators' tooling consumes. ID numbers
// are masked; the full snapshot stays in the database.
type ManualBookingCreatedEvent struct {
	ID             string    `json:"id"`
	Reference      string    `json:"reference"`
	Museum         string    `json:"museum"`
	VisitDate      string    `json:"visitDate"`
	TimeSlot       string    `json:"timeSlot"`
	VisitorName    string    `json:"visitorName"`
	IDNumberMasked string    `json:"idNumberMasked"`
	VisitorCount   int       `json:"visitorCount"`
	Deadline       time.Time `json:"deadline"`
	FailureSummary string    `json:"failureSummary,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewManualBookingCreatedEvent(b *manual.Booking) ManualBookingCreatedEvent {
	req := b.Request()
	return ManualBookingCreatedEvent{
		ID:             b.ID().String(),
		Reference:      b.Reference(),
		Museum:         req.Museum.String(),
		VisitDate:      req.VisitDate,
		TimeSlot:       req.TimeSlot,
		VisitorName:    req.VisitorName,
		IDNumberMasked: booking.MaskedIDNumber(req.IDNumber),
		VisitorCount:   len(req.Visitors),
		Deadline:       b.Deadline(),
		FailureSummary: b.FailureSummary(),
		CreatedAt:      b.CreatedAt(),
	}
}

// AMQPPublisher opens a broker connection per message.
type AMQPPublisher struct {
	url    string
	queue  string
	logger *slog.Logger
}

func NewAMQPPublisher(cfg config.AMQPConfig, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, queue: cfg.ManualQueue, logger: logger}
}

func (p *AMQPPublisher) ManualBookingCreated(ctx context.Context, b *manual.Booking) error {
	body, err := json.Marshal(NewManualBookingCreatedEvent(b))
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("rabbitmq: declare queue %s: %w", p.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    b.ID().String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq: publish: %w", err)
	}

	p.logger.Info("manual booking published", slog.String("queue", p.queue), slog.String("manual_booking_id", b.ID().String()))
	return nil
}
