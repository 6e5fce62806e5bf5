package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"coherence-backend/internal/scans"
	"coherence-backend/internal/usage"
)

func newTestRouter(scanSvc *scans.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("isGuest", false)
		c.Next()
	})
	api := router.Group("/api/v1")
	NewHandler(NewScriptedClient(), scanSvc).RegisterRoutes(api)
	return router
}

func postChat(t *testing.T, router *gin.Engine, message string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"message": message})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestChatEndpointScriptedReply(t *testing.T) {
	scanSvc := &scans.Service{Repo: scans.NewMemoryRepo(), Usage: usage.NewService()}
	router := newTestRouter(scanSvc)

	resp := postChat(t, router, "Jeg sover dårlig")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(body.Reply, "døgnrytmen") {
		t.Fatalf("unexpected reply: %q", body.Reply)
	}
}

func TestChatEndpointFallbackUsesLatestScan(t *testing.T) {
	scanSvc := &scans.Service{Repo: scans.NewMemoryRepo(), Usage: usage.NewService(), DemoEnabled: true}
	router := newTestRouter(scanSvc)

	resp := postChat(t, router, "Hva nå?")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// The demo scan's heaviest system is the nervous system.
	if !strings.Contains(body.Reply, "nervesystem") {
		t.Fatalf("expected fallback to name top system, got %q", body.Reply)
	}
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	scanSvc := &scans.Service{Repo: scans.NewMemoryRepo(), Usage: usage.NewService()}
	router := newTestRouter(scanSvc)

	resp := postChat(t, router, "   ")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
