package response

import (
	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromUserView(view *queries.AuthorizedUserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromUserList(views []*queries.AuthorizedUserView) []*UserResponse {
	result := make([]*UserResponse, len(views))
	for i, view := range views {
		result[i] = FromUserView(view)
	}
	return result
}
