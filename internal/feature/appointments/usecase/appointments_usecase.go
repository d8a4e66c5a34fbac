// Package usecase implements the business logic for the appointments feature.
package usecase

import (
	"context"
	"time"

	"repair_backend/internal/feature/appointments/domain/entity"
)

// AppointmentRepository abstracts the persistence layer for appointments.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type AppointmentRepository interface {
	// Create persists a new appointment to the storage.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByUserID retrieves all appointments owned by the given user,
	// ordered by appointment date descending.
	FindByUserID(ctx context.Context, userID uint) ([]entity.Appointment, error)
}

// appointmentsUsecase implements the booking business logic.
type appointmentsUsecase struct {
	appointments AppointmentRepository
}

// NewAppointmentsUsecase creates a new instance of appointmentsUsecase.
func NewAppointmentsUsecase(appointments AppointmentRepository) *appointmentsUsecase {
	return &appointmentsUsecase{appointments: appointments}
}

// Book persists a new appointment for the given user.
// No validation happens beyond field presence at the transport layer:
// dates in the past are accepted, matching the observed behavior.
func (u *appointmentsUsecase) Book(ctx context.Context, userID uint, phoneModel, issue string, date time.Time) (*entity.Appointment, error) {
	appointment := &entity.Appointment{
		UserID:     userID,
		PhoneModel: phoneModel,
		Issue:      issue,
		Date:       date,
	}
	if err := u.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListByUser returns the user's appointments, newest date first.
// Each call issues a fresh query; an empty slice means no bookings yet.
func (u *appointmentsUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Appointment, error) {
	return u.appointments.FindByUserID(ctx, userID)
}
