package models

import "time"

// Booking statuses known to the dashboard. The field itself is an open
// string; admins may set values outside this list.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusPaid       = "Paid"
	StatusCompleted  = "Completed"
)

type Booking struct {
	ID            string `json:"id" bson:"id"`
	CustomerName  string `json:"customerName" bson:"customerName"`
	CustomerEmail string `json:"customerEmail" bson:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`

	RacketBrand   string `json:"racketBrand,omitempty" bson:"racketBrand,omitempty"`
	RacketModel   string `json:"racketModel,omitempty" bson:"racketModel,omitempty"`
	StringName    string `json:"stringName" bson:"stringName"`
	StringTension string `json:"stringTension,omitempty" bson:"stringTension,omitempty"`

	PreferredDate string `json:"preferredDate" bson:"preferredDate"` // YYYY-MM-DD
	PreferredTime string `json:"preferredTime,omitempty" bson:"preferredTime,omitempty"`
	DropLocation  string `json:"dropLocation,omitempty" bson:"dropLocation,omitempty"`

	Status string `json:"status" bson:"status"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt         time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt" bson:"updatedAt"`
	PaymentReceivedAt *time.Time `json:"paymentReceivedAt,omitempty" bson:"paymentReceivedAt,omitempty"`
}

type StringItem struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Sport       string    `json:"sport" bson:"sport"` // tennis, badminton, squash
	Color       string    `json:"color,omitempty" bson:"color,omitempty"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type AvailabilitySlot struct {
	ID        string    `json:"id" bson:"id"`
	Date      string    `json:"date" bson:"date"` // YYYY-MM-DD
	Time      string    `json:"time" bson:"time"` // HH:MM
	Location  string    `json:"location" bson:"location"`
	Available bool      `json:"available" bson:"available"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Admin is the single privileged identity, sourced from configuration.
// It never lives in the database.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
