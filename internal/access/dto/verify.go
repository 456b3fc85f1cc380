package dto

type VerifyInput struct {
	Email string `json:"user_email"`
	Code  string `json:"verification_code"`
}
