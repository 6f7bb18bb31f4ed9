package middlewares

import (
	"agrochat/agrochat/config"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIKeyMiddleware(t *testing.T) {
	cfg := config.Config{MasterAPIKey: "master-secret"}
	var reached bool
	handler := APIKeyMiddleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name       string
		key        string
		wantStatus int
		wantNext   bool
	}{
		{"missing key", "", http.StatusUnauthorized, false},
		{"wrong key", "guess", http.StatusUnauthorized, false},
		{"correct key", "master-secret", http.StatusOK, true},
	}
	for _, tc := range cases {
		reached = false
		req := httptest.NewRequest("POST", "/chat", nil)
		if tc.key != "" {
			req.Header.Set("X-API-Key", tc.key)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != tc.wantStatus {
			t.Errorf("%s: expected status %d, got %d", tc.name, tc.wantStatus, rr.Code)
		}
		if reached != tc.wantNext {
			t.Errorf("%s: expected next-handler reached=%v, got %v", tc.name, tc.wantNext, reached)
		}
	}
}

func TestAPIKeyMiddlewareEmptyConfiguredKey(t *testing.T) {
	// an unset MASTER_API_KEY must not let empty headers through
	handler := APIKeyMiddleware(config.Config{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached")
	}))
	req := httptest.NewRequest("POST", "/chat", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}
