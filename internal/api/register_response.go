package api

import "time"

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	Status      string       `json:"status" example:"success"`
	AccessToken string       `json:"access_token" example:"eyJhbGciOi..."`
	ExpiresAt   time.Time    `json:"expires_at" example:"2025-05-09T15:04:05Z07:00"`
	User        UserResponse `json:"user"`
}
