package dto

import (
	"github.com/google/uuid"

	"hireboard/internal/domain/user"
)

type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Token string    `json:"token"`
}

func NewAuthResponse(u user.User, token string) AuthResponse {
	return AuthResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
		Token: token,
	}
}
