package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"service-pricing/internal/config"
)

func newTestServer(strict bool) *Server {
	cfg := config.Default()
	cfg.Pricing.StrictInputs = strict
	return NewServer("test", cfg)
}

func post(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestPostQuote(t *testing.T) {
	rec := post(t, newTestServer(false), `{
		"kind": "legal_consulting",
		"description": "Partnership agreement drafting",
		"estimated_hours": 25,
		"complexity": 3,
		"urgency": 5,
		"hourly_rate": "300",
		"discounts": [15],
		"urgencies": [1]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID        string `json:"id"`
		Source    string `json:"source"`
		Currency  string `json:"currency"`
		Scenarios []struct {
			Breakdown struct {
				Title      string `json:"title"`
				FinalPrice string `json:"final_price"`
			} `json:"breakdown"`
			Discounts []struct {
				Price string `json:"price"`
			} `json:"discounts"`
			Urgencies []struct {
				Applied int    `json:"applied"`
				Price   string `json:"price"`
			} `json:"urgencies"`
		} `json:"scenarios"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}

	if resp.ID == "" || resp.Source != "api" || resp.Currency != "BRL" {
		t.Errorf("Unexpected envelope: %+v", resp)
	}
	sc := resp.Scenarios[0]
	if sc.Breakdown.Title != "Legal Consulting" || sc.Breakdown.FinalPrice != "12187.5" {
		t.Errorf("Unexpected breakdown: %+v", sc.Breakdown)
	}
	if sc.Discounts[0].Price != "10359.375" {
		t.Errorf("Expected discount price 10359.375, got %s", sc.Discounts[0].Price)
	}
	if sc.Urgencies[0].Applied != 1 || sc.Urgencies[0].Price != "10237.5" {
		t.Errorf("Unexpected urgency result: %+v", sc.Urgencies[0])
	}
}

func TestPostQuoteErrors(t *testing.T) {
	cases := []struct {
		name   string
		strict bool
		body   string
		code   string
	}{
		{"malformed", false, `{"kind":`, "INVALID_JSON"},
		{"unknown kind", false, `{"kind":"plumbing","estimated_hours":1,"hourly_rate":1}`, "VALIDATION_ERROR"},
		{"strict server", true, `{"kind":"legal_consulting","estimated_hours":-1,"hourly_rate":1}`, "VALIDATION_ERROR"},
		{"strict request", false, `{"kind":"legal_consulting","estimated_hours":1,"hourly_rate":0,"mode":"strict"}`, "VALIDATION_ERROR"},
		{"bad mode", false, `{"kind":"legal_consulting","estimated_hours":1,"hourly_rate":1,"mode":"lenient"}`, "VALIDATION_ERROR"},
	}

	for _, tc := range cases {
		rec := post(t, newTestServer(tc.strict), tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
			continue
		}
		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Errorf("%s: invalid error JSON: %v", tc.name, err)
			continue
		}
		if resp.Error.Code != tc.code {
			t.Errorf("%s: expected code %s, got %s", tc.name, tc.code, resp.Error.Code)
		}
	}
}

func TestPermissiveRequestOverridesStrictServer(t *testing.T) {
	rec := post(t, newTestServer(true), `{"kind":"legal_consulting","estimated_hours":-2,"hourly_rate":10,"mode":"permissive"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 in permissive mode, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetKinds(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/kinds", nil))

	var resp struct {
		Kinds []KindInfo `json:"kinds"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(resp.Kinds) != 3 || resp.Kinds[0].Kind != "engineering_project" || resp.Kinds[2].Title != "Legal Consulting" {
		t.Errorf("Unexpected kinds: %+v", resp.Kinds)
	}
}

func TestHealthAndMethodRouting(t *testing.T) {
	s := newTestServer(false)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("Unexpected health response %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET /quotes, got %d", rec.Code)
	}
}

func TestValidationErrorNamesField(t *testing.T) {
	rec := post(t, newTestServer(true), `{"kind":"legal_consulting","estimated_hours":1,"hourly_rate":0}`)

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid error JSON: %v", err)
	}
	if resp.Error.Code != "VALIDATION_ERROR" || resp.Error.Field != "hourly_rate" {
		t.Errorf("Expected VALIDATION_ERROR on hourly_rate, got %+v", resp.Error)
	}
}

func TestPostQuoteRejectsOversizedBody(t *testing.T) {
	body := `{"kind":"legal_consulting","description":"` + strings.Repeat("x", maxRequestBytes) + `"}`
	rec := post(t, newTestServer(false), body)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("Expected 413, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid error JSON: %v", err)
	}
	if resp.Error.Code != "REQUEST_TOO_LARGE" {
		t.Errorf("Expected REQUEST_TOO_LARGE, got %s", resp.Error.Code)
	}
}

func TestPanickingHandlerAnswers500(t *testing.T) {
	s := newTestServer(false)
	s.mux.HandleFunc("GET /broken", func(http.ResponseWriter, *http.Request) {
		panic("formatter table corrupted")
	})

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid error JSON: %v", err)
	}
	if resp.Error.Code != "INTERNAL_ERROR" || !strings.Contains(resp.Error.Message, "GET /broken") {
		t.Errorf("Unexpected error body: %+v", resp.Error)
	}
}
