package dto

import "time"

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	App      string `json:"app"`
}

type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
