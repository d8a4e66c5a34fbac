// Package entity defines the domain entities for the appointments feature.
package entity

import "time"

// Appointment represents a phone-repair booking owned by a single user.
// Records are immutable after creation: no update or delete operations
// exist anywhere in the system.
type Appointment struct {
	// ID is the unique identifier for the appointment.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user. An appointment is only ever
	// visible to its owner.
	UserID uint `gorm:"index;not null"`

	// PhoneModel is the device the customer wants repaired.
	PhoneModel string `gorm:"size:255"`

	// Issue is the customer's description of the problem.
	Issue string `gorm:"size:1024"`

	// Date is the requested appointment date.
	Date time.Time `gorm:"index;not null"`

	// CreatedAt is set automatically when the record is persisted.
	CreatedAt time.Time
}
