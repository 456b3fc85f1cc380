package errors

import (
	"errors"
)

var (
	ErrInvalidName        = errors.New("the name does not meet the established standards")
	ErrInvalidEmail       = errors.New("the provided email is not valid")
	ErrInvalidPassword    = errors.New("the password does not meet the established standards")
	ErrPasswordPolicy     = errors.New("the password does not satisfy the password policy")
	ErrIncompletePair     = errors.New("both 'role_name' and 'app_name' are required")
	ErrIncompleteItem     = errors.New("each app item must include 'role' and 'app'")
	ErrMissingAssignment  = errors.New("at least one role/app assignment is required")
	ErrInvalidReference   = errors.New("identifier reference must not be empty")
	ErrRoleNotFound       = errors.New("role not found")
	ErrAppNotFound        = errors.New("application not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyAssigned    = errors.New("user already assigned to this role and app")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrAppRefRequired     = errors.New("field 'app_id' is required to update app fields")
	ErrAssignmentNotFound = errors.New("user or app assignment not found")
	ErrNoChanges          = errors.New("no changes provided")
	ErrInvalidStatus      = errors.New("status must be one of Pending, Active or Inactive")
	ErrUserNotActive      = errors.New("user is not active")
	ErrInvalidOldPassword = errors.New("old password is incorrect")
	ErrPasswordMismatch   = errors.New("new password and confirm password do not match")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
