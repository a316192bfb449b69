package bookings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vastu-backend/internal/shared/server/middleware"
	"vastu-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches booking routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.create)
	rg.GET("/bookings", h.list)
	rg.GET("/bookings/:id", h.get)
	rg.PATCH("/bookings/:id", h.update)
	rg.DELETE("/bookings/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	var input BookingInsert
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if input.UserID == "" {
		input.UserID = middleware.UserIDFromContext(c)
	}

	booking, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "analysisId, name, email and phone are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create booking", nil)
		}
		return
	}

	c.Set("bookingId", booking.ID)
	respond.JSON(c, http.StatusCreated, booking)
}

func (h *Handler) get(c *gin.Context) {
	booking, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch booking", nil)
		return
	}
	if booking == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "booking not found", nil)
		return
	}
	respond.OK(c, booking)
}

func (h *Handler) update(c *gin.Context) {
	var upd BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	booking, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update booking", nil)
		return
	}
	if booking == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "booking not found", nil)
		return
	}
	respond.OK(c, booking)
}

// list serves both lookups: ?email= and ?analysisId=.
func (h *Handler) list(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	analysisID := strings.TrimSpace(c.Query("analysisId"))

	var (
		bookings []Booking
		err      error
	)
	switch {
	case email != "":
		bookings, err = h.Svc.ListByEmail(c.Request.Context(), email)
	case analysisID != "":
		bookings, err = h.Svc.ListByAnalysisID(c.Request.Context(), analysisID)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "email or analysisId is required", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list bookings", nil)
		return
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	respond.OK(c, gin.H{"bookings": bookings})
}

func (h *Handler) remove(c *gin.Context) {
	deleted, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete booking", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": deleted})
}
