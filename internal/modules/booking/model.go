package booking

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// CustomTattooServiceID marks a tattoo budget request, which has no fixed
// price and carries the reference-image fields.
const CustomTattooServiceID = "custom-tattoo"

const customTattooServiceName = "Tatuagem (Orçamento)"

// Appointment is a booking request for a half-hour slot. ServiceName and
// Price are copied from the catalog at creation time so later catalog edits
// never change a booked appointment.
type Appointment struct {
	ID             uuid.UUID         `json:"id"`
	ServiceID      string            `json:"service_id"`
	ServiceName    string            `json:"service_name"`
	Price          float64           `json:"price"`
	CustomerName   string            `json:"customer_name"`
	Phone          string            `json:"phone"`
	Date           string            `json:"date"` // YYYY-MM-DD
	Time           string            `json:"time"` // HH:MM
	Status         AppointmentStatus `json:"status"`
	Notes          string            `json:"notes,omitempty"`
	TattooImageURL string            `json:"tattoo_image_url,omitempty"`
	TattooSize     string            `json:"tattoo_size,omitempty"`
	TattooLocation string            `json:"tattoo_location,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateAppointmentRequest is the payload for booking a slot.
type CreateAppointmentRequest struct {
	ServiceID      string `json:"service_id"`
	CustomerName   string `json:"customer_name"`
	Phone          string `json:"phone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Notes          string `json:"notes,omitempty"`
	TattooImageURL string `json:"tattoo_image_url,omitempty"`
	TattooSize     string `json:"tattoo_size,omitempty"`
	TattooLocation string `json:"tattoo_location,omitempty"`
}

// UpdateStatusRequest is the payload for confirming or cancelling.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
