package mq

import (
	"context"
	"encoding/json"
	"log"

	"restring/rdx"
)

// Channel carries booking lifecycle events to the admin live feed.
const Channel = "booking-events"

// Event describes a booking lifecycle change.
type Event struct {
	Type      string `json:"type"` // booking-created, booking-updated, booking-paid, booking-deleted
	BookingID string `json:"bookingId"`
	Status    string `json:"status,omitempty"`
}

// Emit publishes an event. Failures are logged and swallowed; the
// primary request never depends on the bus.
func Emit(ctx context.Context, ev Event) {
	if rdx.Conn == nil {
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[mq] marshal event failed: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, Channel, data).Err(); err != nil {
		log.Printf("[mq] publish %s failed: %v", ev.Type, err)
	}
}
