package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Domenick1991/airportsystem/internal/domain"
	"github.com/Domenick1991/airportsystem/internal/repository"
	"github.com/Domenick1991/airportsystem/internal/service/booking"
	"github.com/Domenick1991/airportsystem/internal/service/session"
)

type UserHandler struct {
	users    repository.UserRepository
	bookings booking.BookingUseCase
	sessions session.SessionUseCase
}

type userRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=admin user"`
}

func NewUserHandler(users repository.UserRepository, bookings booking.BookingUseCase, sessions session.SessionUseCase) *UserHandler {
	return &UserHandler{users: users, bookings: bookings, sessions: sessions}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *UserHandler) list(c *gin.Context) {
	if _, ok := requireAdmin(c, h.sessions); !ok {
		return
	}
	c.JSON(http.StatusOK, h.users.List(c.Request.Context()))
}

func (h *UserHandler) create(c *gin.Context) {
	if _, ok := requireAdmin(c, h.sessions); !ok {
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := h.users.Add(c.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	c.JSON(http.StatusCreated, user)
}

// update edits the identity fields only; id and booking list stay as stored.
// Bookings are mutated exclusively through the booking engine.
func (h *UserHandler) update(c *gin.Context) {
	if _, ok := requireAdmin(c, h.sessions); !ok {
		return
	}

	existing, ok := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if !ok {
		fail(c, domain.ErrNotFound)
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Password = req.Password
	if req.Role != "" {
		existing.Role = req.Role
	}
	h.users.Update(c.Request.Context(), *existing)
	c.JSON(http.StatusOK, existing)
}

func (h *UserHandler) remove(c *gin.Context) {
	if _, ok := requireAdmin(c, h.sessions); !ok {
		return
	}

	if err := h.bookings.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
