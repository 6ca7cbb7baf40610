package auth

import (
	"time"

	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	"github.com/fenzolabs/fenzo-backend/pkg/enums"
	"github.com/google/uuid"
)

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse is returned on a successful login or refresh.
type LoginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// RefreshRequest carries the expired access token and the refresh token.
type RefreshRequest struct {
	AccessToken  string
	RefreshToken string
}

// UserDTO is the public shape of an admin operator.
type UserDTO struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	Role      enums.MemberRole `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
}

// FromModel maps the persistence model to its DTO.
func FromModel(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
