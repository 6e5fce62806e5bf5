package scans

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coherence-backend/internal/insight/narrative"
	"coherence-backend/internal/shared/server/middleware"
	"coherence-backend/internal/shared/server/respond"
)

// Handler exposes scan endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scans", h.create)
	rg.GET("/scans", h.list)
	rg.GET("/scans/latest", h.latest)
	rg.GET("/scans/:id", h.get)
	rg.GET("/scans/:id/systems", h.systems)
	rg.GET("/scans/:id/issues", h.issues)
	rg.GET("/scans/:id/summary", h.summary)
	rg.GET("/relationships", h.relationship)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid scan payload", nil)
		return
	}

	scan, err := h.Svc.Create(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuotaExceeded):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "scan limit reached for this period", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}

	c.Set("scanId", scan.ID)
	respond.JSON(c, http.StatusCreated, scan)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list scans", nil)
		return
	}
	respond.OK(c, gin.H{"scans": list})
}

func (h *Handler) latest(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	scan, err := h.Svc.Latest(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no scans yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch scan", nil)
		return
	}
	c.Set("scanId", scan.ID)
	respond.OK(c, scan)
}

func (h *Handler) get(c *gin.Context) {
	scan, ok := h.loadOwnedScan(c)
	if !ok {
		return
	}
	respond.OK(c, scan)
}

func (h *Handler) systems(c *gin.Context) {
	scan, ok := h.loadOwnedScan(c)
	if !ok {
		return
	}
	respond.OK(c, gin.H{"systems": h.Svc.Systems(scan)})
}

func (h *Handler) issues(c *gin.Context) {
	scan, ok := h.loadOwnedScan(c)
	if !ok {
		return
	}
	respond.OK(c, h.Svc.Issues(scan))
}

func (h *Handler) summary(c *gin.Context) {
	scan, ok := h.loadOwnedScan(c)
	if !ok {
		return
	}
	respond.OK(c, gin.H{"summary": h.Svc.Summary(scan)})
}

func (h *Handler) relationship(c *gin.Context) {
	systemA := c.Query("a")
	systemB := c.Query("b")
	if systemA == "" || systemB == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "both a and b are required", nil)
		return
	}
	respond.OK(c, gin.H{"description": narrative.DescribeRelationship(systemA, systemB)})
}

func (h *Handler) loadOwnedScan(c *gin.Context) (Scan, bool) {
	userID := middleware.UserIDFromContext(c)
	scanID := c.Param("id")
	if scanID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "scan id is required", nil)
		return Scan{}, false
	}

	scan, err := h.Svc.Get(c.Request.Context(), userID, scanID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
			// Hide existence of other users' scans.
			respond.Error(c, http.StatusNotFound, "not_found", "scan not found", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch scan", nil)
		}
		return Scan{}, false
	}
	c.Set("scanId", scan.ID)
	return scan, true
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
