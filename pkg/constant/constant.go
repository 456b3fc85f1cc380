package constant

import "time"

// Stable message codes returned in the response envelope. Clients key on
// these, not on the human-readable message.
const (
	Created                     = "CREATED"
	InvalidName                 = "INVALID_NAME"
	InvalidEmailDomain          = "INVALID_EMAIL_DOMAIN"
	InvalidPassword             = "INVALID_PASSWORD"
	UserAlreadyRegistered       = "USER_ALREADY_REGISTERED"
	MissingRequiredFields       = "MISSING_REQUIRED_FIELDS"
	UserNotFound                = "USER_NOT_FOUND"
	UserNotActive               = "USER_NOT_ACTIVE"
	InvalidOldPassword          = "INVALID_OLD_PASSWORD"
	PasswordsDoNotMatch         = "PASSWORDS_DO_NOT_MATCH"
	PasswordUpdatedSuccessfully = "PASSWORD_UPDATED_SUCCESSFULLY"
	PasswordResetInitiated      = "PASSWORD_RESET_INITIATED"
	InvalidVerificationCode     = "INVALID_VERIFICATION_CODE"
	VerificationExpired         = "VERIFICATION_EXPIRED"
	VerificationSuccessful      = "VERIFICATION_SUCCESSFUL"
	InvalidCredentials          = "INVALID_CREDENTIALS"
	LoginSuccessful             = "LOGIN_SUCCESSFUL"
	UnexpectedError             = "UNEXPECTED_ERROR"
)

// CodeExpirationLayout is the textual timestamp format stored alongside
// verification codes. Existing documents use this exact layout in UTC, so it
// must not change.
const CodeExpirationLayout = "2006/01/02 15:04:05"

// CodeTTL is how long a verification code or password-reset code stays valid.
const CodeTTL = 5 * time.Minute

const (
	MinNameLength     = 2
	MinPasswordLength = 8
)
