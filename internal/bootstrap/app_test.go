package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"churn-backend/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		CacheTTL:        time.Minute,
		RecommendLimit:  5,
	}
}

func doJSON(t *testing.T, app *App, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func createCard(t *testing.T, app *App, body string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/cards", "admin", body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create card: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var card struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		t.Fatalf("decode card: %v", err)
	}
	return card.ID
}

type recommendationList struct {
	Recommendations []struct {
		Card struct {
			ID   string `json:"id"`
			Bank string `json:"bank"`
		} `json:"card"`
		Score       float64    `json:"score"`
		Reason      string     `json:"reason"`
		EligibleAt  *time.Time `json:"eligible_at"`
		EligibleNow bool       `json:"eligible_now"`
	} `json:"recommendations"`
}

func getRecommendations(t *testing.T, app *App, userID string) recommendationList {
	t.Helper()
	resp := doJSON(t, app, http.MethodGet, "/api/v1/recommendations", userID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("recommendations: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var list recommendationList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode recommendations: %v", err)
	}
	return list
}

func TestBuildWiresMemoryBackendInDev(t *testing.T) {
	app, err := Build(testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected no database without DATABASE_URL")
	}
	if app.Cache == nil {
		t.Fatalf("expected an in-memory cache")
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/health", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", resp.Code)
	}
}

func TestBuildRequiresDatabaseInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Env = "production"
	if _, err := Build(cfg); err == nil {
		t.Fatalf("expected Build to fail without DATABASE_URL in production")
	}
}

func TestRecommendationFlowEndToEnd(t *testing.T) {
	app, err := Build(testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	anzID := createCard(t, app, `{
		"bank": "ANZ",
		"name": "Rewards Black",
		"annual_fee": 375,
		"welcome_bonus_points": 130000,
		"bonus_spend_requirement": 3000
	}`)
	amexID := createCard(t, app, `{
		"bank": "American Express",
		"name": "Explorer",
		"annual_fee": 395,
		"welcome_bonus_points": 100000,
		"bonus_spend_requirement": 4000
	}`)

	// Holding the ANZ card hides it from the list entirely.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/wallet", "user-1", fmt.Sprintf(`{
		"bank": "ANZ",
		"card_id": %q,
		"application_date": "2023-01-10"
	}`, anzID))
	if resp.Code != http.StatusCreated {
		t.Fatalf("add record: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var record struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		t.Fatalf("decode record: %v", err)
	}

	list := getRecommendations(t, app, "user-1")
	if len(list.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(list.Recommendations))
	}
	if got := list.Recommendations[0].Card.ID; got != amexID {
		t.Fatalf("expected amex card %s, got %s", amexID, got)
	}
	if !list.Recommendations[0].EligibleNow {
		t.Fatalf("amex card should be eligible with no amex history")
	}
	if list.Recommendations[0].Reason == "" {
		t.Fatalf("eligible recommendation must carry a reason")
	}

	// Cancelling today starts the 12 month cooling period and must also
	// invalidate the cached list.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/wallet/"+record.ID+"/cancel", "user-1", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("cancel record: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	list = getRecommendations(t, app, "user-1")
	if len(list.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations after cancel, got %d", len(list.Recommendations))
	}
	var foundANZ bool
	for _, rec := range list.Recommendations {
		if rec.Card.ID != anzID {
			continue
		}
		foundANZ = true
		if rec.EligibleNow {
			t.Fatalf("cancelled today, ANZ must still be cooling")
		}
		if rec.EligibleAt == nil {
			t.Fatalf("cooling recommendation must carry an eligibility date")
		}
	}
	if !foundANZ {
		t.Fatalf("cancelled card should reappear in the list")
	}

	// The eligible card sorts ahead of the cooling one.
	if list.Recommendations[0].Card.ID != amexID {
		t.Fatalf("eligible card must rank first, got %s", list.Recommendations[0].Card.ID)
	}
}

func TestListsAreScopedToTheRequestingUser(t *testing.T) {
	app, err := Build(testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cardID := createCard(t, app, `{"bank": "NAB", "name": "Rewards Signature", "welcome_bonus_points": 120000}`)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/wallet", "user-a", fmt.Sprintf(`{
		"bank": "NAB",
		"card_id": %q,
		"application_date": "2024-02-01"
	}`, cardID))
	if resp.Code != http.StatusCreated {
		t.Fatalf("add record: expected 201, got %d", resp.Code)
	}

	if list := getRecommendations(t, app, "user-a"); len(list.Recommendations) != 0 {
		t.Fatalf("user-a holds the only card, expected empty list, got %d", len(list.Recommendations))
	}
	if list := getRecommendations(t, app, "user-b"); len(list.Recommendations) != 1 {
		t.Fatalf("user-b has no history, expected full catalog, got %d", len(list.Recommendations))
	}
}
