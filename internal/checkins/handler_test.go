package checkins

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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

func postCheckin(t *testing.T, router *gin.Engine, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkins", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRecordCheckinEndpoint(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepo()))

	resp := postCheckin(t, router, map[string]any{
		"date": "2026-08-20", "mood": 4, "energy": 3, "note": "god dag",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Checkin
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Date != "2026-08-20" || created.Mood != 4 {
		t.Fatalf("unexpected checkin: %+v", created)
	}
}

func TestRecordCheckinRejectsOutOfRange(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepo()))

	resp := postCheckin(t, router, map[string]any{"date": "2026-08-20", "mood": 9, "energy": 3})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCheckinHistoryEndpoint(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepo()))

	for _, date := range []string{"2026-08-18", "2026-08-19"} {
		if resp := postCheckin(t, router, map[string]any{"date": date, "mood": 3, "energy": 3}); resp.Code != http.StatusOK {
			t.Fatalf("seed %s: %d", date, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkins", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Checkins []Checkin `json:"checkins"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Checkins) != 2 || body.Checkins[0].Date != "2026-08-19" {
		t.Fatalf("unexpected history: %+v", body.Checkins)
	}
}
