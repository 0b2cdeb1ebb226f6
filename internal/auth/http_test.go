// ABOUTME: Tests for the HTTP authentication middleware
// ABOUTME: Covers token extraction, verification, and rejection short-circuiting

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var httpTestSecret = []byte("http-middleware-test-secret-32b!")

func TestMiddleware_ValidToken(t *testing.T) {
	verifier := NewJWTVerifier(httpTestSecret)
	token, _ := verifier.Generate("alice", time.Hour)

	middleware := Middleware(verifier)

	var gotIdentity *Identity
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/getTask", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if gotIdentity == nil {
		t.Fatal("expected Identity in context")
	}
	if gotIdentity.Username != "alice" {
		t.Errorf("expected username %q, got %q", "alice", gotIdentity.Username)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	verifier := NewJWTVerifier(httpTestSecret)
	expired, _ := verifier.Generate("alice", -time.Hour)
	forged, _ := NewJWTVerifier([]byte("some-other-secret")).Generate("alice", time.Hour)

	tests := []struct {
		name   string
		header string
	}{
		{
			name:   "missing header",
			header: "",
		},
		{
			name:   "wrong scheme",
			header: "Basic dXNlcjpwYXNz",
		},
		{
			name:   "empty token",
			header: "Bearer ",
		},
		{
			name:   "garbage token",
			header: "Bearer not-a-jwt",
		},
		{
			name:   "expired token",
			header: "Bearer " + expired,
		},
		{
			name:   "forged token",
			header: "Bearer " + forged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := Middleware(verifier)

			handlerRan := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerRan = true
			})

			req := httptest.NewRequest(http.MethodPost, "/getTask", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			middleware(handler).ServeHTTP(rec, req)

			if handlerRan {
				t.Error("handler should not run for a rejected request")
			}
			if rec.Code != http.StatusForbidden {
				t.Errorf("expected status 403, got %d", rec.Code)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if body["error"] != "Invalid token" {
				t.Errorf("expected error %q, got %q", "Invalid token", body["error"])
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "valid bearer",
			header:    "Bearer abc123",
			wantToken: "abc123",
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "missing prefix",
			header:  "abc123",
			wantErr: true,
		},
		{
			name:    "empty token",
			header:  "Bearer ",
			wantErr: true,
		},
		{
			name:    "lowercase scheme",
			header:  "bearer abc123",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, errMsg := extractBearerToken(tt.header)
			if tt.wantErr {
				if errMsg == "" {
					t.Error("expected an error message")
				}
				return
			}
			if errMsg != "" {
				t.Fatalf("unexpected error: %s", errMsg)
			}
			if token != tt.wantToken {
				t.Errorf("token = %q, want %q", token, tt.wantToken)
			}
		})
	}
}
