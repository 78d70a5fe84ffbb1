package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lielsontattoo/studio-backend/internal/events"
	"github.com/lielsontattoo/studio-backend/internal/modules/catalog"
	"github.com/lielsontattoo/studio-backend/internal/modules/config"
)

// Service defines the booking business logic.
type Service interface {
	// AvailableSlots returns the bookable times for a date, in template
	// order. A date on the studio's closed list has no slots.
	AvailableSlots(ctx context.Context, date string) ([]string, error)

	// CreateAppointment re-validates availability and books the slot.
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error)

	// GetAppointment retrieves one appointment.
	GetAppointment(ctx context.Context, id string) (*Appointment, error)

	// ListAppointments returns appointments for the admin panel.
	ListAppointments(ctx context.Context, includeCancelled bool) ([]*Appointment, error)

	// UpdateStatus confirms or cancels an appointment.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Appointment, error)
}

type service struct {
	repo        Repository
	configRepo  config.Repository
	serviceRepo catalog.ServiceRepository
	hub         *events.Hub
}

// NewService creates a new booking service.
func NewService(repo Repository, configRepo config.Repository, serviceRepo catalog.ServiceRepository, hub *events.Hub) Service {
	return &service{repo: repo, configRepo: configRepo, serviceRepo: serviceRepo, hub: hub}
}

// Confirmed and cancelled are terminal; re-applying the current status is a no-op.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {},
	StatusCancelled: {},
}

func (s *service) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	closed, err := s.isClosedDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if closed {
		return []string{}, nil
	}
	booked, err := s.repo.BookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	return availableSlots(false, booked), nil
}

func (s *service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	if req.CustomerName == "" || req.Phone == "" {
		return nil, fmt.Errorf("customer_name and phone are required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", req.Date)
	}
	if !isTemplateSlot(req.Time) {
		return nil, fmt.Errorf("time %q is not a bookable slot", req.Time)
	}

	closed, err := s.isClosedDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, fmt.Errorf("the studio is closed on %s", req.Date)
	}

	serviceName, price, err := s.resolveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	a := &Appointment{
		ID:             uuid.New(),
		ServiceID:      req.ServiceID,
		ServiceName:    serviceName,
		Price:          price,
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Date:           req.Date,
		Time:           req.Time,
		Status:         StatusPending,
		Notes:          req.Notes,
		TattooImageURL: req.TattooImageURL,
		TattooSize:     req.TattooSize,
		TattooLocation: req.TattooLocation,
		CreatedAt:      time.Now(),
	}

	created, err := s.repo.CreateIfSlotFree(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to persist appointment: %w", err)
	}
	if !created {
		return nil, fmt.Errorf("slot %s on %s is no longer available", req.Time, req.Date)
	}
	s.hub.Publish(events.TopicAppointments, "created", a)
	return a, nil
}

func (s *service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListAppointments(ctx context.Context, includeCancelled bool) ([]*Appointment, error) {
	return s.repo.List(ctx, includeCancelled)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}

	newStatus := AppointmentStatus(strings.ToUpper(req.Status))
	if newStatus == a.Status {
		return a, nil
	}
	allowed := false
	for _, next := range validTransitions[a.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition appointment from %s to %s", a.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	a.Status = newStatus
	s.hub.Publish(events.TopicAppointments, "updated", a)
	return a, nil
}

func (s *service) isClosedDate(ctx context.Context, date string) (bool, error) {
	conf, err := s.configRepo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("load studio config: %w", err)
	}
	for _, d := range conf.ClosedDates {
		if d == date {
			return true, nil
		}
	}
	return false, nil
}

// resolveService snapshots the service name and price. A custom tattoo
// request has no fixed price; it is quoted over WhatsApp after review.
func (s *service) resolveService(ctx context.Context, serviceID string) (string, float64, error) {
	if serviceID == CustomTattooServiceID {
		return customTattooServiceName, 0, nil
	}
	item, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return "", 0, fmt.Errorf("service %s not found", serviceID)
	}
	if !item.IsActive {
		return "", 0, fmt.Errorf("service %s is not currently offered", item.Name)
	}
	return item.Name, item.Price, nil
}
