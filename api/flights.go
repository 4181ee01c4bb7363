package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Domenick1991/airportsystem/internal/domain"
	"github.com/Domenick1991/airportsystem/internal/repository"
	"github.com/Domenick1991/airportsystem/internal/service/booking"
	"github.com/Domenick1991/airportsystem/internal/service/session"
)

type FlightHandler struct {
	flights  repository.FlightRepository
	bookings booking.BookingUseCase
	sessions session.SessionUseCase
}

type flightRequest struct {
	FlightNumber string              `json:"flightNumber" binding:"required"`
	Origin       string              `json:"origin" binding:"required"`
	Destination  string              `json:"destination" binding:"required"`
	Time         string              `json:"time"`
	Gate         string              `json:"gate"`
	Status       domain.FlightStatus `json:"status" binding:"omitempty,oneof=Scheduled Delayed Boarding Departed Cancelled"`
	Price        *float64            `json:"price" binding:"omitempty,gte=0"`
}

func NewFlightHandler(flights repository.FlightRepository, bookings booking.BookingUseCase, sessions session.SessionUseCase) *FlightHandler {
	return &FlightHandler{flights: flights, bookings: bookings, sessions: sessions}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
	router.POST("/:id/book", h.book)
	router.POST("/:id/unbook", h.unbook)
}

func (h *FlightHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.flights.List(c.Request.Context()))
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, ok := h.flights.FindByID(c.Request.Context(), c.Param("id"))
	if !ok {
		fail(c, domain.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	if _, ok := requireAdmin(c, h.sessions); !ok {
		return
	}

	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := req.Status
	if status == "" {
		status = domain.FlightStatusScheduled
	}
	var price float64
	if req.Price != nil {
		price = *req.Price
	}

	flight := h.flights.Add(c.Request.Context(), domain.Flight{
		FlightNumber: req.FlightNumber,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Time:         req.Time,
		Gate:         req.Gate,
		Status:       status,
		Price:        price,
	})
	c.JSON(http.StatusCreated, flight)
}

// update edits the schedule fields only; id and passenger list stay as
// stored.
func (h *FlightHandler) update(c *gin.Context) {
	if _, ok := requireAdmin(c, h.sessions); !ok {
		return
	}

	existing, ok := h.flights.FindByID(c.Request.Context(), c.Param("id"))
	if !ok {
		fail(c, domain.ErrNotFound)
		return
	}

	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.FlightNumber = req.FlightNumber
	existing.Origin = req.Origin
	existing.Destination = req.Destination
	existing.Time = req.Time
	existing.Gate = req.Gate
	if req.Status != "" {
		existing.Status = req.Status
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	h.flights.Update(c.Request.Context(), *existing)
	c.JSON(http.StatusOK, existing)
}

func (h *FlightHandler) remove(c *gin.Context) {
	if _, ok := requireAdmin(c, h.sessions); !ok {
		return
	}

	if err := h.bookings.DeleteFlight(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) book(c *gin.Context) {
	current, _ := h.sessions.Current()

	user, err := h.bookings.Book(c.Request.Context(), c.Param("id"), current)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *FlightHandler) unbook(c *gin.Context) {
	current, _ := h.sessions.Current()

	user, err := h.bookings.Unbook(c.Request.Context(), c.Param("id"), current)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
