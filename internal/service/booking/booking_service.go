package booking

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Domenick1991/airportsystem/internal/domain"
	"github.com/Domenick1991/airportsystem/internal/kafka"
	"github.com/Domenick1991/airportsystem/internal/repository"
)

type BookingUseCase interface {
	Book(ctx context.Context, flightID string, actingUser *domain.User) (*domain.User, error)
	Unbook(ctx context.Context, flightID string, actingUser *domain.User) (*domain.User, error)
	DeleteFlight(ctx context.Context, flightID string) error
	DeleteUser(ctx context.Context, userID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Session is how the engine keeps the active identity in sync with the
// stores after it mutates a user record.
type Session interface {
	Current() (*domain.User, bool)
	Refresh(ctx context.Context, user *domain.User)
	Logout(ctx context.Context)
}

// BookingService is the only component allowed to mutate both stores in one
// operation. A single mutex serializes every mutation so no reader ever
// observes one half of the user/flight relation updated without the other.
type BookingService struct {
	mu       sync.Mutex
	users    repository.UserRepository
	flights  repository.FlightRepository
	session  Session
	producer Producer
	topic    string
	logger   *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewBookingService(
	users repository.UserRepository,
	flights repository.FlightRepository,
	session Session,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		users:   users,
		flights: flights,
		session: session,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book records actingUser on the flight and the flight on the user, in that
// booking order, and returns the updated user record. A repeat call is a
// no-op that reports ErrAlreadyBooked so the caller can render the state
// distinctly from a fresh booking.
func (s *BookingService) Book(ctx context.Context, flightID string, actingUser *domain.User) (*domain.User, error) {
	if actingUser == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flights.FindByID(ctx, flightID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if flight.BookedByUser(actingUser.ID) {
		return nil, domain.ErrAlreadyBooked
	}
	if flight.Status.Closed() {
		return nil, domain.ErrBookingClosed
	}

	user, ok := s.users.FindByID(ctx, actingUser.ID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	flight.BookedBy = append(flight.BookedBy, user.ID)
	s.flights.Update(ctx, *flight)

	user.BookedTickets = append(user.BookedTickets, flight.ID)
	s.users.Update(ctx, *user)

	if s.session != nil {
		s.session.Refresh(ctx, user)
	}
	s.publish(ctx, kafka.EventTicketBooked, user, flight)
	return user, nil
}

// Unbook is the exact inverse of Book. Unbooking a flight the user does not
// hold is a silent no-op that returns the unchanged record.
func (s *BookingService) Unbook(ctx context.Context, flightID string, actingUser *domain.User) (*domain.User, error) {
	if actingUser == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flights.FindByID(ctx, flightID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	user, ok := s.users.FindByID(ctx, actingUser.ID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !flight.BookedByUser(user.ID) {
		return user, nil
	}

	flight.BookedBy = slices.DeleteFunc(flight.BookedBy, func(id string) bool { return id == user.ID })
	s.flights.Update(ctx, *flight)

	user.BookedTickets = slices.DeleteFunc(user.BookedTickets, func(id string) bool { return id == flight.ID })
	s.users.Update(ctx, *user)

	if s.session != nil {
		s.session.Refresh(ctx, user)
	}
	s.publish(ctx, kafka.EventTicketUnbooked, user, flight)
	return user, nil
}

// DeleteFlight removes the flight and strips its id from every holder's
// tickets in one batch write.
func (s *BookingService) DeleteFlight(ctx context.Context, flightID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flights.FindByID(ctx, flightID)
	if !ok {
		return domain.ErrNotFound
	}

	s.flights.Remove(ctx, flightID)

	users := s.users.List(ctx)
	changed := false
	for i := range users {
		if users[i].HasTicket(flightID) {
			users[i].BookedTickets = slices.DeleteFunc(users[i].BookedTickets, func(id string) bool { return id == flightID })
			changed = true
		}
	}
	if changed {
		s.users.ReplaceAll(ctx, users)
	}

	if s.session != nil {
		if current, ok := s.session.Current(); ok && current.HasTicket(flightID) {
			if updated, ok := s.users.FindByID(ctx, current.ID); ok {
				s.session.Refresh(ctx, updated)
			}
		}
	}
	s.publish(ctx, kafka.EventFlightDeleted, nil, flight)
	return nil
}

// DeleteUser removes the user and strips their id from every flight's
// passenger list in one batch write. Deleting the active identity logs the
// session out.
func (s *BookingService) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.FindByID(ctx, userID)
	if !ok {
		return domain.ErrNotFound
	}

	s.users.Remove(ctx, userID)

	flights := s.flights.List(ctx)
	changed := false
	for i := range flights {
		if flights[i].BookedByUser(userID) {
			flights[i].BookedBy = slices.DeleteFunc(flights[i].BookedBy, func(id string) bool { return id == userID })
			changed = true
		}
	}
	if changed {
		s.flights.ReplaceAll(ctx, flights)
	}

	if s.session != nil {
		if current, ok := s.session.Current(); ok && current.ID == userID {
			s.session.Logout(ctx)
		}
	}
	s.publish(ctx, kafka.EventUserDeleted, user, nil)
	return nil
}

// publish is best-effort: a broker failure never fails the command.
func (s *BookingService) publish(ctx context.Context, eventType string, user *domain.User, flight *domain.Flight) {
	if s.producer == nil || s.topic == "" {
		return
	}

	event := kafka.TicketEvent{
		Type:       eventType,
		OccurredAt: time.Now(),
	}
	key := eventType
	if user != nil {
		event.UserID = user.ID
		event.Email = user.Email
		key = user.ID
	}
	if flight != nil {
		event.FlightID = flight.ID
		event.FlightNumber = flight.FlightNumber
		if user == nil {
			key = flight.ID
		}
	}

	if err := s.producer.Publish(ctx, s.topic, key, event); err != nil {
		s.logger.Warn("publish ticket event failed",
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
