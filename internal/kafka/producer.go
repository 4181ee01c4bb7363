package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// TicketEvent is published whenever the booking engine changes the relation
// between a user and a flight.
type TicketEvent struct {
	Type         string    `json:"type"`
	UserID       string    `json:"user_id"`
	FlightID     string    `json:"flight_id"`
	FlightNumber string    `json:"flight_number"`
	Email        string    `json:"email"`
	OccurredAt   time.Time `json:"occurred_at"`
}

const (
	EventTicketBooked   = "ticket_booked"
	EventTicketUnbooked = "ticket_unbooked"
	EventFlightDeleted  = "flight_deleted"
	EventUserDeleted    = "user_deleted"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
