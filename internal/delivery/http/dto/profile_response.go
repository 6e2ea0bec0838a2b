package dto

import (
	"github.com/google/uuid"

	"hireboard/internal/domain/user"
)

type ProfileResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
}

func NewProfileResponse(u user.User) ProfileResponse {
	return ProfileResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role.String(),
		Phone:   u.Phone,
		Address: u.Address,
	}
}
