package healthsystems

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coherence-backend/internal/shared/server/respond"
)

// Handler exposes the health-system catalog.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health-systems", h.list)
	rg.GET("/health-systems/partitioned", h.partitioned)
}

func (h *Handler) list(c *gin.Context) {
	if area := c.Query("area"); area != "" {
		item, ok := h.Svc.Find(area)
		if !ok {
			respond.Error(c, http.StatusNotFound, "not_found", "unknown area", nil)
			return
		}
		respond.OK(c, item)
		return
	}
	respond.OK(c, gin.H{"items": h.Svc.All()})
}

func (h *Handler) partitioned(c *gin.Context) {
	respond.OK(c, gin.H{"groups": h.Svc.ByCategory()})
}
