package dto

import (
	"time"

	"gerejaku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// ListUserQuery: GET /api/users?search=&status=
type ListUserQuery struct {
	Search string `query:"search" validate:"omitempty,max=100"`
	Status string `query:"status" validate:"omitempty,oneof=all active inactive"`
}

// UpdateUserStatusRequest: PATCH /api/users/:id/status
type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
