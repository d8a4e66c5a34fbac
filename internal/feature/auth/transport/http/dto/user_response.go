package dto

import (
	"time"

	"repair_backend/internal/feature/auth/domain/entity"
)

// UserRes represents the response body for the /api/me endpoint.
// The password hash is deliberately absent: the credential never crosses
// the transport boundary.
type UserRes struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserResFromEntity converts a domain entity to the response DTO.
func UserResFromEntity(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
