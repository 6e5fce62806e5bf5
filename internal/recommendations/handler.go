package recommendations

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coherence-backend/internal/insight/recommend"
	"coherence-backend/internal/shared/server/middleware"
	"coherence-backend/internal/shared/server/respond"
)

// Handler exposes recommendation endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recommendations", h.overview)
	rg.GET("/recommendations/grouped", h.grouped)
	rg.PUT("/recommendations", h.replace)
	rg.POST("/recommendations/toggle", h.toggle)
}

func (h *Handler) overview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	overview, err := h.Svc.Overview(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to load recommendations")
		return
	}
	respond.OK(c, overview)
}

func (h *Handler) grouped(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	overview, err := h.Svc.Overview(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to load recommendations")
		return
	}
	respond.OK(c, gin.H{"groups": overview.Groups})
}

type replaceRequest struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

func (h *Handler) replace(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req replaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid recommendations payload", nil)
		return
	}
	if err := h.Svc.Replace(c.Request.Context(), userID, req.Recommendations); err != nil {
		h.fail(c, err, "failed to save recommendations")
		return
	}
	overview, err := h.Svc.Overview(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to load recommendations")
		return
	}
	respond.OK(c, overview)
}

type toggleRequest struct {
	Text string `json:"text"`
}

func (h *Handler) toggle(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid toggle payload", nil)
		return
	}
	overview, err := h.Svc.ToggleCompleted(c.Request.Context(), userID, req.Text)
	if err != nil {
		h.fail(c, err, "failed to toggle recommendation")
		return
	}
	respond.OK(c, overview)
}

func (h *Handler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", msg, nil)
	}
}
