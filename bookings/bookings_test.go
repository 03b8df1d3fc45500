package bookings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restring/models"

	"github.com/julienschmidt/httprouter"
)

// Malformed ids must be rejected before any storage access; these tests
// run without a database connection.
func TestMalformedIDRejectedBeforeStorage(t *testing.T) {
	badParams := httprouter.Params{{Key: "id", Value: "not-a-valid-id"}}

	handlers := map[string]httprouter.Handle{
		"get":      GetBooking,
		"update":   UpdateBooking,
		"delete":   DeleteBooking,
		"markpaid": MarkPaid,
		"receipt":  Receipt,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-valid-id", nil)
			rec := httptest.NewRecorder()
			h(rec, req, badParams)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"empty", map[string]string{}},
		{"no email", map[string]string{"customerName": "Maya", "stringName": "BG80", "preferredDate": "2026-09-01"}},
		{"no string", map[string]string{"customerName": "Maya", "customerEmail": "m@e.com", "preferredDate": "2026-09-01"}},
		{"no date", map[string]string{"customerName": "Maya", "customerEmail": "m@e.com", "stringName": "BG80"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			CreateBooking(rec, req, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestApplyUpdatePaymentTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-72 * time.Hour)

	tests := []struct {
		name     string
		existing models.Booking
		incoming models.Booking
		want     *time.Time
	}{
		{"paid stamps unset timestamp",
			models.Booking{Status: models.StatusPending},
			models.Booking{Status: models.StatusPaid},
			&now},
		{"paid preserves existing timestamp",
			models.Booking{Status: models.StatusPaid, PaymentReceivedAt: &earlier},
			models.Booking{Status: models.StatusPaid},
			&earlier},
		{"pending leaves timestamp unset",
			models.Booking{Status: models.StatusPending},
			models.Booking{Status: models.StatusPending},
			nil},
		{"completed keeps earlier stamp",
			models.Booking{Status: models.StatusPaid, PaymentReceivedAt: &earlier},
			models.Booking{Status: models.StatusCompleted},
			&earlier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.existing.ID = "1234567890123456789012"
			tt.existing.CreatedAt = earlier

			got := applyUpdate(tt.existing, tt.incoming, now)

			if tt.want == nil && got.PaymentReceivedAt != nil {
				t.Fatalf("paymentReceivedAt = %v, want nil", got.PaymentReceivedAt)
			}
			if tt.want != nil && (got.PaymentReceivedAt == nil || !got.PaymentReceivedAt.Equal(*tt.want)) {
				t.Fatalf("paymentReceivedAt = %v, want %v", got.PaymentReceivedAt, tt.want)
			}
			if got.ID != tt.existing.ID {
				t.Fatalf("id = %q, want %q", got.ID, tt.existing.ID)
			}
			if !got.CreatedAt.Equal(tt.existing.CreatedAt) {
				t.Fatalf("createdAt changed: %v", got.CreatedAt)
			}
			if !got.UpdatedAt.Equal(now) {
				t.Fatalf("updatedAt = %v, want %v", got.UpdatedAt, now)
			}
		})
	}
}

func TestPaidUpdateIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-72 * time.Hour)

	set := paidUpdate(models.Booking{Status: models.StatusPending}, now)
	if set["status"] != models.StatusPaid {
		t.Fatalf("status = %v, want %q", set["status"], models.StatusPaid)
	}
	if got, ok := set["paymentReceivedAt"].(time.Time); !ok || !got.Equal(now) {
		t.Fatalf("paymentReceivedAt = %v, want %v", set["paymentReceivedAt"], now)
	}

	set = paidUpdate(models.Booking{Status: models.StatusPaid, PaymentReceivedAt: &earlier}, now)
	if _, ok := set["paymentReceivedAt"]; ok {
		t.Fatal("re-marking paid must not touch the original timestamp")
	}
}

func TestCreateBookingRejectsInvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	CreateBooking(rec, req, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
