package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coherence-backend/internal/scans"
	"coherence-backend/internal/shared/metrics"
	"coherence-backend/internal/shared/server/middleware"
	"coherence-backend/internal/shared/server/respond"
)

// Handler exposes the chat endpoint.
type Handler struct {
	Client Client
	Scans  *scans.Service
}

// NewHandler constructs a Handler.
func NewHandler(client Client, scanSvc *scans.Service) *Handler {
	return &Handler{Client: client, Scans: scanSvc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.reply)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) reply(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	state := h.scanContext(c, userID)
	answer, err := h.Client.Reply(c.Request.Context(), req.Message, state)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to produce reply", nil)
		return
	}
	metrics.IncChatReply()
	respond.OK(c, gin.H{"reply": answer})
}

// scanContext derives the chat context from the latest scan. A user without
// scans simply gets an empty context.
func (h *Handler) scanContext(c *gin.Context, userID string) Context {
	if h.Scans == nil {
		return Context{}
	}
	scan, err := h.Scans.Latest(c.Request.Context(), userID)
	if err != nil {
		if !errors.Is(err, scans.ErrNotFound) {
			return Context{}
		}
		return Context{}
	}
	state := Context{CoherenceScore: scan.CoherenceScore}
	systems := h.Scans.Systems(scan)
	if len(systems) > 0 {
		state.TopSystem = systems[0].Name
		state.TopSystemLoad = systems[0].Value
	}
	return state
}
