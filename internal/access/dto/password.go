package dto

type ResetInput struct {
	Email string `json:"email"`
}

type ChangePasswordInput struct {
	UserEmail       string `json:"user_email"`
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
