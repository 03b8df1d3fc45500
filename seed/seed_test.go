package seed

import (
	"testing"
	"time"

	"restring/models"
	"restring/utils"
)

func TestFixtureCounts(t *testing.T) {
	bookings, strings, slots := fixtures(time.Now())

	if len(bookings) != 2 {
		t.Fatalf("bookings = %d, want 2", len(bookings))
	}
	if len(strings) != 5 {
		t.Fatalf("strings = %d, want 5", len(strings))
	}
	if len(slots) != 3 {
		t.Fatalf("slots = %d, want 3", len(slots))
	}
}

func TestFixtureBookingsWellFormed(t *testing.T) {
	bookings, _, _ := fixtures(time.Now())

	var paid int
	for _, doc := range bookings {
		b, ok := doc.(models.Booking)
		if !ok {
			t.Fatalf("fixture is %T, want models.Booking", doc)
		}
		if !utils.ValidID(b.ID) {
			t.Fatalf("fixture id %q is not a valid record id", b.ID)
		}
		if b.Status == models.StatusPaid {
			paid++
			if b.PaymentReceivedAt == nil {
				t.Fatal("paid fixture missing paymentReceivedAt")
			}
		}
	}
	if paid != 1 {
		t.Fatalf("paid fixtures = %d, want 1", paid)
	}
}
