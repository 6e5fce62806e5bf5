package checkins

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coherence-backend/internal/shared/server/middleware"
	"coherence-backend/internal/shared/server/respond"
)

// Handler exposes check-in endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches check-in routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkins", h.record)
	rg.GET("/checkins", h.history)
	rg.GET("/checkins/today", h.today)
}

type recordRequest struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
	Note   string `json:"note"`
}

func (h *Handler) record(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid checkin payload", nil)
		return
	}

	checkin, err := h.Svc.Record(c.Request.Context(), userID, Input{
		Date:   req.Date,
		Mood:   req.Mood,
		Energy: req.Energy,
		Note:   req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save checkin", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, checkin)
}

func (h *Handler) history(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit := intQuery(c, "limit", 30)
	offset := intQuery(c, "offset", 0)

	list, err := h.Svc.History(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list checkins", nil)
		return
	}
	respond.OK(c, gin.H{"checkins": list})
}

func (h *Handler) today(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	checkin, err := h.Svc.Today(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no checkin for today", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch checkin", nil)
		return
	}
	respond.OK(c, checkin)
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return def
	}
	return val
}
