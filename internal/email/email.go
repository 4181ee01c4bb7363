package email

import (
	"context"

	"go.uber.org/zap"

	"github.com/Domenick1991/airportsystem/internal/kafka"
)

// Sender delivers ticket notifications. The demo deployment only logs them;
// a real SMTP integration would slot in here.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(_ context.Context, event kafka.TicketEvent) error {
	s.logger.Info("send email notification",
		zap.String("to", event.Email),
		zap.String("type", event.Type),
		zap.String("flight_number", event.FlightNumber),
		zap.String("flight_id", event.FlightID),
	)
	return nil
}
