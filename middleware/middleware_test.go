package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restring/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func issueTestToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := &Claims{
		AdminID: "admin-1",
		Email:   "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthenticate(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	var gotAdminID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotAdminID, _ = r.Context().Value(globals.AdminIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"bad format", "token-without-scheme", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + issueTestToken(t, -time.Hour), http.StatusUnauthorized},
		{"valid token", "Bearer " + issueTestToken(t, time.Hour), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAdminID = ""
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req, nil)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && gotAdminID != "admin-1" {
				t.Fatalf("context admin id = %q, want admin-1", gotAdminID)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	token := issueTestToken(t, time.Hour)
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AdminID != "admin-1" {
		t.Fatalf("admin id = %q", claims.AdminID)
	}

	if _, err := ValidateToken(""); err == nil {
		t.Fatal("empty token accepted")
	}
	if _, err := ValidateToken("Bearer " + issueTestToken(t, -time.Minute)); err == nil {
		t.Fatal("expired token accepted")
	}
}
