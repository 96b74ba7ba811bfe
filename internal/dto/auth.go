package dto

import "time"

// DevTokenRequest asks for a locally signed access token. A missing user_id
// gets a fresh one.
type DevTokenRequest struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
	Email  string `json:"email" validate:"required,email"`
}

// TokenResponse contains an access token for the bearer scheme
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
}

// SeedTransactionsRequest asks for generated purchase history
type SeedTransactionsRequest struct {
	Months int `json:"months" validate:"omitempty,min=1,max=12"`
}
