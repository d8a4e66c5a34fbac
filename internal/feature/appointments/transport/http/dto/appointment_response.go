package dto

import (
	"time"

	"repair_backend/internal/feature/appointments/domain/entity"
)

// AppointmentRes represents one element of the GET /appointments response.
// The "user" field carries the owning user's ID, matching the stored
// document shape clients already consume.
type AppointmentRes struct {
	ID         uint      `json:"id"`
	User       uint      `json:"user"`
	PhoneModel string    `json:"phoneModel"`
	Issue      string    `json:"issue"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AppointmentResFromEntity converts a domain entity to the response DTO.
func AppointmentResFromEntity(a *entity.Appointment) AppointmentRes {
	return AppointmentRes{
		ID:         a.ID,
		User:       a.UserID,
		PhoneModel: a.PhoneModel,
		Issue:      a.Issue,
		Date:       a.Date,
		CreatedAt:  a.CreatedAt,
	}
}
