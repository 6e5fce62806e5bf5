package recommendations

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"coherence-backend/internal/insight/recommend"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("isGuest", false)
		c.Next()
	})
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestToggleEndpointReturnsProjection(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if err := svc.Replace(context.Background(), "user-1", []recommend.Recommendation{
		{Text: "Pusteøvelse om kvelden", Category: "Ro", Importance: recommend.ImportanceHigh},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router := newTestRouter(svc)

	body, _ := json.Marshal(map[string]string{"text": "Pusteøvelse om kvelden"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/toggle", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var overview Overview
	if err := json.Unmarshal(resp.Body.Bytes(), &overview); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(overview.Ranked) != 1 || !overview.Ranked[0].Completed {
		t.Fatalf("expected completed recommendation, got %+v", overview.Ranked)
	}
}

func TestGroupedEndpoint(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if err := svc.Replace(context.Background(), "user-1", []recommend.Recommendation{
		{Text: "Gå en tur før lunsj", Category: "Bevegelse"},
		{Text: "Drikk mer vann"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/grouped", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Groups []GroupView `json:"groups"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Groups) != 2 || body.Groups[1].Category != recommend.DefaultCategory {
		t.Fatalf("unexpected groups: %+v", body.Groups)
	}
}

func TestToggleEndpointRejectsMissingText(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepo()))

	body, _ := json.Marshal(map[string]string{"text": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/toggle", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
