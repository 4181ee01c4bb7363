package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Domenick1991/airportsystem/internal/domain"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Book(ctx context.Context, flightID string, actingUser *domain.User) (*domain.User, error) {
	args := m.Called(ctx, flightID, actingUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBookingUseCase) Unbook(ctx context.Context, flightID string, actingUser *domain.User) (*domain.User, error) {
	args := m.Called(ctx, flightID, actingUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBookingUseCase) DeleteFlight(ctx context.Context, flightID string) error {
	args := m.Called(ctx, flightID)
	return args.Error(0)
}

func (m *MockBookingUseCase) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockFlightRepository is a mock implementation of repository.FlightRepository
type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Add(ctx context.Context, flight domain.Flight) *domain.Flight {
	args := m.Called(ctx, flight)
	return args.Get(0).(*domain.Flight)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight domain.Flight) {
	m.Called(ctx, flight)
}

func (m *MockFlightRepository) Remove(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockFlightRepository) FindByID(ctx context.Context, id string) (*domain.Flight, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Flight), args.Bool(1)
}

func (m *MockFlightRepository) List(ctx context.Context) []domain.Flight {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight)
}

func (m *MockFlightRepository) ReplaceAll(ctx context.Context, flights []domain.Flight) {
	m.Called(ctx, flights)
}

func TestFlightHandler_list(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	handler := NewFlightHandler(mockRepo, &MockBookingUseCase{}, &MockSessionUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	flights := []domain.Flight{
		{ID: "f001", FlightNumber: "PK-755", Origin: "PEW", Destination: "DXB", Status: domain.FlightStatusScheduled, Price: 450},
	}
	mockRepo.On("List", c.Request.Context()).Return(flights)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PK-755")
	mockRepo.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	handler := NewFlightHandler(mockRepo, &MockBookingUseCase{}, &MockSessionUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/flights/missing", nil)

	mockRepo.On("FindByID", c.Request.Context(), "missing").Return(nil, false)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestFlightHandler_update_OmittedPriceIsKept(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockSessions := &MockSessionUseCase{}
	handler := NewFlightHandler(mockRepo, &MockBookingUseCase{}, mockSessions)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "f001"}}
	c.Request = jsonRequest("PUT", "/flights/f001", `{"flightNumber":"PK-755","origin":"PEW","destination":"DXB","gate":"A4"}`)

	existing := &domain.Flight{ID: "f001", FlightNumber: "PK-755", Origin: "PEW", Destination: "DXB", Status: domain.FlightStatusScheduled, Price: 450}
	mockSessions.On("Current").Return(&domain.User{ID: "user1", Role: domain.RoleAdmin}, true)
	mockRepo.On("FindByID", c.Request.Context(), "f001").Return(existing, true)
	mockRepo.On("Update", c.Request.Context(), mock.MatchedBy(func(f domain.Flight) bool {
		return f.Price == 450 && f.Gate == "A4"
	}))

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestFlightHandler_update_PriceApplied(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockSessions := &MockSessionUseCase{}
	handler := NewFlightHandler(mockRepo, &MockBookingUseCase{}, mockSessions)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "f001"}}
	c.Request = jsonRequest("PUT", "/flights/f001", `{"flightNumber":"PK-755","origin":"PEW","destination":"DXB","price":510}`)

	existing := &domain.Flight{ID: "f001", FlightNumber: "PK-755", Origin: "PEW", Destination: "DXB", Status: domain.FlightStatusScheduled, Price: 450}
	mockSessions.On("Current").Return(&domain.User{ID: "user1", Role: domain.RoleAdmin}, true)
	mockRepo.On("FindByID", c.Request.Context(), "f001").Return(existing, true)
	mockRepo.On("Update", c.Request.Context(), mock.MatchedBy(func(f domain.Flight) bool {
		return f.Price == 510
	}))

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestFlightHandler_book(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	mockSessions := &MockSessionUseCase{}
	handler := NewFlightHandler(&MockFlightRepository{}, mockBookings, mockSessions)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "f001"}}
	c.Request = httptest.NewRequest("POST", "/flights/f001/book", nil)

	user := &domain.User{ID: "user2", Email: "ali@pasi.com"}
	booked := &domain.User{ID: "user2", Email: "ali@pasi.com", BookedTickets: []string{"f001"}}

	mockSessions.On("Current").Return(user, true)
	mockBookings.On("Book", c.Request.Context(), "f001", user).Return(booked, nil)

	handler.book(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "f001")
	mockBookings.AssertExpectations(t)
}

func TestFlightHandler_book_Anonymous(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	mockSessions := &MockSessionUseCase{}
	handler := NewFlightHandler(&MockFlightRepository{}, mockBookings, mockSessions)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "f001"}}
	c.Request = httptest.NewRequest("POST", "/flights/f001/book", nil)

	mockSessions.On("Current").Return(nil, false)
	mockBookings.On("Book", c.Request.Context(), "f001", (*domain.User)(nil)).Return(nil, domain.ErrNotAuthenticated)

	handler.book(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockBookings.AssertExpectations(t)
}

func TestFlightHandler_book_AlreadyBooked(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	mockSessions := &MockSessionUseCase{}
	handler := NewFlightHandler(&MockFlightRepository{}, mockBookings, mockSessions)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "f001"}}
	c.Request = httptest.NewRequest("POST", "/flights/f001/book", nil)

	user := &domain.User{ID: "user2"}
	mockSessions.On("Current").Return(user, true)
	mockBookings.On("Book", c.Request.Context(), "f001", user).Return(nil, domain.ErrAlreadyBooked)

	handler.book(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockBookings.AssertExpectations(t)
}

func TestFlightHandler_remove_RequiresAdmin(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	mockSessions := &MockSessionUseCase{}
	handler := NewFlightHandler(&MockFlightRepository{}, mockBookings, mockSessions)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "f001"}}
	c.Request = httptest.NewRequest("DELETE", "/flights/f001", nil)

	mockSessions.On("Current").Return(&domain.User{ID: "user2", Role: domain.RoleUser}, true)

	handler.remove(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockBookings.AssertNotCalled(t, "DeleteFlight", mock.Anything, mock.Anything)
}

func TestFlightHandler_remove(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	mockSessions := &MockSessionUseCase{}
	handler := NewFlightHandler(&MockFlightRepository{}, mockBookings, mockSessions)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "f001"}}
	c.Request = httptest.NewRequest("DELETE", "/flights/f001", nil)

	mockSessions.On("Current").Return(&domain.User{ID: "user1", Role: domain.RoleAdmin}, true)
	mockBookings.On("DeleteFlight", c.Request.Context(), "f001").Return(nil)

	handler.remove(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockBookings.AssertExpectations(t)
}
