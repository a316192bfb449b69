package analyses

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

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.create)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
	rg.PATCH("/analyses/:id", h.update)
	rg.DELETE("/analyses/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	var input AnalysisInsert
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if input.UserID == "" {
		input.UserID = middleware.UserIDFromContext(c)
	}

	analysis, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "propertyType and videoUrl are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create analysis", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) get(c *gin.Context) {
	analysis, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		return
	}
	if analysis == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) update(c *gin.Context) {
	var upd AnalysisUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	analysis, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update analysis", nil)
		return
	}
	if analysis == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) list(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		userID = middleware.UserIDFromContext(c)
	}
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "userId is required", nil)
		return
	}

	analyses, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	if analyses == nil {
		analyses = []Analysis{}
	}
	respond.OK(c, gin.H{"analyses": analyses})
}

func (h *Handler) remove(c *gin.Context) {
	deleted, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete analysis", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": deleted})
}
