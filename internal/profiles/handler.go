package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studentdocs-backend/internal/shared/server/middleware"
	"studentdocs-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.save)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, profile)
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var payload Profile
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile, err := h.Svc.Save(c.Request.Context(), userID, payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, profile)
}
