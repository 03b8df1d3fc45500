package inventory

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestCreateStringValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"empty", map[string]interface{}{}},
		{"no sport", map[string]interface{}{"name": "BG80"}},
		{"no name", map[string]interface{}{"sport": "badminton"}},
		{"negative quantity", map[string]interface{}{"name": "BG80", "sport": "badminton", "quantity": -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/api/strings", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			CreateString(rec, req, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestMalformedIDRejected(t *testing.T) {
	params := httprouter.Params{{Key: "id", Value: "abc"}}

	handlers := map[string]httprouter.Handle{
		"get":    GetString,
		"update": UpdateString,
		"delete": DeleteString,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/strings/abc", nil)
			rec := httptest.NewRecorder()
			h(rec, req, params)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}
