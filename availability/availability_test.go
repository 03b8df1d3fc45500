package availability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestCreateSlotValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"empty", map[string]interface{}{}},
		{"no time", map[string]interface{}{"date": "2026-09-01", "location": "Shop"}},
		{"no location", map[string]interface{}{"date": "2026-09-01", "time": "10:00"}},
		{"bad date", map[string]interface{}{"date": "Sept 1st", "time": "10:00", "location": "Shop"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/api/availability", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			CreateSlot(rec, req, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestDeleteSlotRejectsMalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/availability/xyz", nil)
	rec := httptest.NewRecorder()
	DeleteSlot(rec, req, httprouter.Params{{Key: "id", Value: "xyz"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
