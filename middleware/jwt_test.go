package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New().String()
	token, err := GenerateToken(userID, "staff", "Asha", "9999999902", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotUserID string
	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r)
		if claims == nil {
			t.Fatal("GetClaims returned nil inside the middleware chain")
		}
		gotUserID = GetUserID(r)
	}))

	r := httptest.NewRequest("GET", "/api/v1/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}
	if gotUserID != userID {
		t.Errorf("GetUserID = %q, expected %q", gotUserID, userID)
	}
	// rows keyed by the caller depend on the claim being a parseable uuid
	if _, err := uuid.Parse(gotUserID); err != nil {
		t.Errorf("claim user id %q is not a uuid: %v", gotUserID, err)
	}
}

func TestJWTMiddlewareRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler reached with invalid auth")
			}))

			r := httptest.NewRequest("GET", "/api/v1/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, expected 401", w.Code)
			}
		})
	}
}
