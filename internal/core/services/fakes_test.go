package services

import (
	"context"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields) {}
func (l nopLogger) Info(event string, fields out.LogFields)  {}
func (l nopLogger) Warn(event string, fields out.LogFields)  {}
func (l nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

type fakeAppointmentStore struct {
	appointments map[string]*domain.Appointment
	updateErr    error
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{appointments: make(map[string]*domain.Appointment)}
}

func (f *fakeAppointmentStore) Insert(ctx context.Context, appointment domain.Appointment) error {
	stored := appointment
	f.appointments[appointment.ID] = &stored
	return nil
}

func (f *fakeAppointmentStore) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, ok := f.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentStore) ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	var result []domain.Appointment
	for _, appointment := range f.appointments {
		if appointment.UserID == userID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentStore) ListByTechnician(ctx context.Context, technicianID string) ([]domain.Appointment, error) {
	var result []domain.Appointment
	for _, appointment := range f.appointments {
		if appointment.TechnicianID == technicianID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentStore) UpdateStatusIf(ctx context.Context, id string, expect []domain.AppointmentStatus, update out.AppointmentUpdate) (*domain.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	appointment, ok := f.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	matched := false
	for _, status := range expect {
		if appointment.Status.Global == status {
			matched = true
			break
		}
	}
	if !matched {
		return nil, domain.ErrStatusConflict
	}

	for key, value := range update {
		switch key {
		case "status":
			appointment.Status = value.(domain.StatusRecord)
		case "rejectionReason":
			appointment.RejectionReason = value.(string)
		case "cancellationReason":
			appointment.CancellationReason = value.(string)
		case "estimatedCompletionDate":
			ts := value.(time.Time)
			appointment.EstimatedCompletionDate = &ts
		case "acceptedAt":
			ts := value.(time.Time)
			appointment.AcceptedAt = &ts
		case "arrivedAt":
			ts := value.(time.Time)
			appointment.ArrivedAt = &ts
		case "repairStartedAt":
			ts := value.(time.Time)
			appointment.RepairStartedAt = &ts
		case "testingStartedAt":
			ts := value.(time.Time)
			appointment.TestingStartedAt = &ts
		case "completedAt":
			ts := value.(time.Time)
			appointment.CompletedAt = &ts
		case "rejectedAt":
			ts := value.(time.Time)
			appointment.RejectedAt = &ts
		case "cancelledAt":
			ts := value.(time.Time)
			appointment.CancelledAt = &ts
		}
	}

	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentStore) CountByTechnicianAndStatus(ctx context.Context, technicianID string, statuses []domain.AppointmentStatus) (int64, error) {
	var count int64
	for _, appointment := range f.appointments {
		if appointment.TechnicianID != technicianID {
			continue
		}
		for _, status := range statuses {
			if appointment.Status.Global == status {
				count++
				break
			}
		}
	}
	return count, nil
}

func (f *fakeAppointmentStore) ListAcceptedForDate(ctx context.Context, day time.Time) ([]domain.Appointment, error) {
	var result []domain.Appointment
	for _, appointment := range f.appointments {
		if appointment.Status.Global != domain.AppointmentStatusAccepted {
			continue
		}
		y1, m1, d1 := appointment.ScheduledDate.Date()
		y2, m2, d2 := day.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

type fakePublisher struct {
	events []domain.AppointmentEvent
	err    error
}

func (f *fakePublisher) PublishAppointmentEvent(ctx context.Context, event domain.AppointmentEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fakeTechnicianStore struct {
	technicians map[string]*domain.Technician
}

func newFakeTechnicianStore() *fakeTechnicianStore {
	return &fakeTechnicianStore{technicians: make(map[string]*domain.Technician)}
}

func (f *fakeTechnicianStore) GetByID(ctx context.Context, id string) (*domain.Technician, error) {
	technician, ok := f.technicians[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *technician
	return &copied, nil
}

func (f *fakeTechnicianStore) SetAvailability(ctx context.Context, id string, available bool) error {
	technician, ok := f.technicians[id]
	if !ok {
		return domain.ErrNotFound
	}
	technician.Availability = available
	return nil
}

func (f *fakeTechnicianStore) SetPhotoURL(ctx context.Context, id string, url string) error {
	technician, ok := f.technicians[id]
	if !ok {
		return domain.ErrNotFound
	}
	technician.PhotoURL = url
	return nil
}

type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) SetSelectedLocation(ctx context.Context, id string, location domain.GeoPoint) error {
	user, ok := f.users[id]
	if !ok {
		f.users[id] = &domain.User{ID: id, SelectedLocation: &location}
		return nil
	}
	user.SelectedLocation = &location
	return nil
}

type fakeDiagnosisStore struct {
	inserted []domain.Diagnosis
}

func (f *fakeDiagnosisStore) Insert(ctx context.Context, diagnosis domain.Diagnosis) error {
	f.inserted = append(f.inserted, diagnosis)
	return nil
}

type fakeNotificationStore struct {
	notifications map[string]domain.Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{notifications: make(map[string]domain.Notification)}
}

func (f *fakeNotificationStore) Insert(ctx context.Context, notification domain.Notification) error {
	f.notifications[notification.ID] = notification
	return nil
}

func (f *fakeNotificationStore) InsertIfAbsent(ctx context.Context, notification domain.Notification) (bool, error) {
	if _, exists := f.notifications[notification.ID]; exists {
		return false, nil
	}
	f.notifications[notification.ID] = notification
	return true, nil
}

func (f *fakeNotificationStore) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	var result []domain.Notification
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			result = append(result, notification)
		}
	}
	return result, nil
}

type fakeAiPort struct {
	diagnosis    string
	diagnosisErr error
	priceUSD     float64
	priceErr     error
}

func (f *fakeAiPort) Diagnose(ctx context.Context, category, brand, model, issue string) (string, error) {
	return f.diagnosis, f.diagnosisErr
}

func (f *fakeAiPort) EstimatePriceUSD(ctx context.Context, category, brand, model, issue string) (float64, error) {
	return f.priceUSD, f.priceErr
}

type fakeRatesPort struct {
	rate float64
	err  error
}

func (f *fakeRatesPort) GetUSDRate(ctx context.Context) (float64, error) {
	return f.rate, f.err
}

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	return f.url, f.err
}
