package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lielsontattoo/studio-backend/internal/modules/catalog"
	"github.com/lielsontattoo/studio-backend/internal/modules/config"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	appointments map[string]*Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{appointments: make(map[string]*Appointment)}
}

func (f *fakeRepo) CreateIfSlotFree(ctx context.Context, a *Appointment) (bool, error) {
	for _, existing := range f.appointments {
		if existing.Date == a.Date && existing.Time == a.Time && existing.Status != StatusCancelled {
			return false, nil
		}
	}
	f.appointments[a.ID.String()] = a
	return true, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return a, nil
}

func (f *fakeRepo) List(ctx context.Context, includeCancelled bool) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range f.appointments {
		if !includeCancelled && a.Status == StatusCancelled {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) BookedTimes(ctx context.Context, date string) ([]string, error) {
	var times []string
	for _, a := range f.appointments {
		if a.Date == date && a.Status != StatusCancelled {
			times = append(times, a.Time)
		}
	}
	return times, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status AppointmentStatus) error {
	f.appointments[id].Status = status
	return nil
}

type fakeConfigRepo struct{ conf config.StudioConfig }

func (f *fakeConfigRepo) Get(ctx context.Context) (*config.StudioConfig, error) {
	c := f.conf
	return &c, nil
}

func (f *fakeConfigRepo) Save(ctx context.Context, c *config.StudioConfig) error {
	f.conf = *c
	return nil
}

type fakeServiceRepo struct{ items map[string]*catalog.ServiceItem }

func (f *fakeServiceRepo) Save(ctx context.Context, s *catalog.ServiceItem) error { return nil }
func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error            { return nil }
func (f *fakeServiceRepo) List(ctx context.Context, activeOnly bool) ([]*catalog.ServiceItem, error) {
	return nil, nil
}
func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*catalog.ServiceItem, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return s, nil
}

func newTestService(repo *fakeRepo, closedDates ...string) (Service, *fakeServiceRepo) {
	haircut := &catalog.ServiceItem{ID: uuid.New(), Name: "Corte de Cabelo", Price: 35, IsActive: true}
	services := &fakeServiceRepo{items: map[string]*catalog.ServiceItem{
		haircut.ID.String(): haircut,
	}}
	conf := &fakeConfigRepo{conf: config.StudioConfig{ClosedDates: closedDates}}
	return NewService(repo, conf, services, nil), services
}

func serviceID(f *fakeServiceRepo) string {
	for id := range f.items {
		return id
	}
	return ""
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestAvailableSlotsExcludesBookedAndCancelled(t *testing.T) {
	repo := newFakeRepo()
	svc, services := newTestService(repo)
	ctx := context.Background()

	a, err := svc.CreateAppointment(ctx, CreateAppointmentRequest{
		ServiceID:    serviceID(services),
		CustomerName: "Maria",
		Phone:        "11999990000",
		Date:         "2024-06-01",
		Time:         "10:00",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	slots, err := svc.AvailableSlots(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	for _, s := range slots {
		if s == "10:00" {
			t.Fatalf("booked slot still available")
		}
	}
	if len(slots) != len(SlotTemplate())-1 {
		t.Fatalf("expected one slot removed, got %d of %d", len(slots), len(SlotTemplate()))
	}

	// cancelling returns the slot to the available set
	if _, err := svc.UpdateStatus(ctx, a.ID.String(), UpdateStatusRequest{Status: "CANCELLED"}); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	slots, _ = svc.AvailableSlots(ctx, "2024-06-01")
	if len(slots) != len(SlotTemplate()) {
		t.Fatalf("cancelled appointment should free its slot")
	}
}

func TestAvailableSlotsClosedDateEmpty(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo, "2024-12-25")

	slots, err := svc.AvailableSlots(context.Background(), "2024-12-25")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("closed date should have no slots, got %v", slots)
	}
}

func TestCreateAppointmentSnapshotsService(t *testing.T) {
	repo := newFakeRepo()
	svc, services := newTestService(repo)

	a, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ServiceID:    serviceID(services),
		CustomerName: "João",
		Phone:        "11988887777",
		Date:         "2024-06-02",
		Time:         "09:30",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if a.Status != StatusPending {
		t.Errorf("new appointment status = %s, want PENDING", a.Status)
	}
	if a.ServiceName != "Corte de Cabelo" || a.Price != 35 {
		t.Errorf("service snapshot = %q/%v, want Corte de Cabelo/35", a.ServiceName, a.Price)
	}
	if a.CreatedAt.IsZero() {
		t.Errorf("CreatedAt not stamped")
	}
}

func TestCreateAppointmentCustomTattoo(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	a, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ServiceID:      CustomTattooServiceID,
		CustomerName:   "Ana",
		Phone:          "11977776666",
		Date:           "2024-06-02",
		Time:           "14:00",
		TattooSize:     "15cm",
		TattooLocation: "antebraço",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if a.Price != 0 {
		t.Errorf("custom tattoo should have price 0, got %v", a.Price)
	}
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	svc, services := newTestService(repo)
	ctx := context.Background()

	req := CreateAppointmentRequest{
		ServiceID:    serviceID(services),
		CustomerName: "Maria",
		Phone:        "11999990000",
		Date:         "2024-06-01",
		Time:         "10:00",
	}
	if _, err := svc.CreateAppointment(ctx, req); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	req.CustomerName = "Pedro"
	_, err := svc.CreateAppointment(ctx, req)
	if err == nil || !strings.Contains(err.Error(), "no longer available") {
		t.Fatalf("double booking should be refused, got %v", err)
	}
}

func TestCreateAppointmentClosedDate(t *testing.T) {
	repo := newFakeRepo()
	svc, services := newTestService(repo, "2024-12-25")

	_, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ServiceID:    serviceID(services),
		CustomerName: "Maria",
		Phone:        "11999990000",
		Date:         "2024-12-25",
		Time:         "10:00",
	})
	if err == nil || !strings.Contains(err.Error(), "closed") {
		t.Fatalf("booking on closed date should be refused, got %v", err)
	}
}

func TestCreateAppointmentRejectsNonTemplateTime(t *testing.T) {
	repo := newFakeRepo()
	svc, services := newTestService(repo)

	_, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ServiceID:    serviceID(services),
		CustomerName: "Maria",
		Phone:        "11999990000",
		Date:         "2024-06-01",
		Time:         "12:00", // midday break
	})
	if err == nil || !strings.Contains(err.Error(), "not a bookable slot") {
		t.Fatalf("midday time should be refused, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newFakeRepo()
	svc, services := newTestService(repo)
	ctx := context.Background()

	a, err := svc.CreateAppointment(ctx, CreateAppointmentRequest{
		ServiceID:    serviceID(services),
		CustomerName: "Maria",
		Phone:        "11999990000",
		Date:         "2024-06-01",
		Time:         "10:00",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	id := a.ID.String()

	// re-applying the current status is a no-op
	if _, err := svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "PENDING"}); err != nil {
		t.Fatalf("same-status update should be a no-op, got %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "CONFIRMED"}); err != nil {
		t.Fatalf("PENDING→CONFIRMED: %v", err)
	}

	// confirmed is terminal
	if _, err := svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "CANCELLED"}); err == nil {
		t.Fatalf("CONFIRMED→CANCELLED should be refused")
	}
	// re-confirming is harmless
	if _, err := svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "CONFIRMED"}); err != nil {
		t.Fatalf("re-confirm should be a no-op, got %v", err)
	}
}
