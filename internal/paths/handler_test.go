package paths

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler().RegisterRoutes(api)
	return r
}

func postValidate(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/paths/validate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestValidateReportsUnavailableInRecommendedPath(t *testing.T) {
	router := newTestRouter()

	body := `{
		"paths": [
			{"cards": [
				{"id": "a", "name": "Card A", "bank": "ANZ", "is_active": true},
				{"id": "b", "name": "Card B", "bank": "NAB", "is_active": false}
			]},
			{"cards": [
				{"id": "c", "name": "Card C", "bank": "Citi", "is_active": true}
			]}
		]
	}`
	resp := postValidate(t, router, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		UnavailableInRecommended *UnavailableCardPayload           `json:"unavailable_in_recommended"`
		Unavailable              map[string]UnavailableCardPayload `json:"unavailable"`
		ValidPaths               []struct {
			Cards []struct {
				ID string `json:"id"`
			} `json:"cards"`
		} `json:"valid_paths"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if payload.UnavailableInRecommended == nil || payload.UnavailableInRecommended.CardID != "b" {
		t.Fatalf("expected card b flagged in recommended path, got %+v", payload.UnavailableInRecommended)
	}
	if !payload.UnavailableInRecommended.IsInRecommendedPath || payload.UnavailableInRecommended.PathIndex != 0 {
		t.Fatalf("expected recommended-path marker, got %+v", payload.UnavailableInRecommended)
	}
	if len(payload.Unavailable) != 1 {
		t.Fatalf("expected 1 unavailable card, got %d", len(payload.Unavailable))
	}
	if len(payload.ValidPaths) != 1 || payload.ValidPaths[0].Cards[0].ID != "c" {
		t.Fatalf("expected only the second path to survive, got %+v", payload.ValidPaths)
	}
}

func TestValidateMissingFlagCountsAsAvailable(t *testing.T) {
	router := newTestRouter()

	body := `{
		"paths": [
			{"cards": [
				{"id": "a", "name": "Card A", "bank": "ANZ"}
			]}
		]
	}`
	resp := postValidate(t, router, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		UnavailableInRecommended *UnavailableCardPayload `json:"unavailable_in_recommended"`
		ValidPaths               []json.RawMessage       `json:"valid_paths"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.UnavailableInRecommended != nil {
		t.Fatalf("card without explicit flag must not be flagged: %+v", payload.UnavailableInRecommended)
	}
	if len(payload.ValidPaths) != 1 {
		t.Fatalf("expected the path to be valid, got %d", len(payload.ValidPaths))
	}
}

func TestValidateEmptyPathList(t *testing.T) {
	router := newTestRouter()

	resp := postValidate(t, router, `{"paths": []}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		UnavailableInRecommended *UnavailableCardPayload           `json:"unavailable_in_recommended"`
		Unavailable              map[string]UnavailableCardPayload `json:"unavailable"`
		ValidPaths               []json.RawMessage                 `json:"valid_paths"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.UnavailableInRecommended != nil {
		t.Fatalf("expected no finding for empty path list")
	}
	if len(payload.Unavailable) != 0 || len(payload.ValidPaths) != 0 {
		t.Fatalf("expected empty collections, got %+v", payload)
	}
}
