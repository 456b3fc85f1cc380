package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/utn-integrador-III/security-service/internal/errors"
	"github.com/utn-integrador-III/security-service/pkg/constant"
)

// respond writes the standard envelope. Empty message or code and nil data
// are omitted.
func respond(c *fiber.Ctx, status int, message, code string, data any) error {
	body := fiber.Map{}
	if message != "" {
		body["message"] = message
	}
	if code != "" {
		body["message_code"] = code
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// errorStatus maps a domain error to its HTTP status and stable message code.
// Unknown errors are infrastructure failures and collapse to a generic 500.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, autherror.ErrInvalidName):
		return fiber.StatusUnprocessableEntity, constant.InvalidName
	case errors.Is(err, autherror.ErrInvalidEmail):
		return fiber.StatusUnprocessableEntity, constant.InvalidEmailDomain
	case errors.Is(err, autherror.ErrInvalidPassword):
		return fiber.StatusUnprocessableEntity, constant.InvalidPassword
	case errors.Is(err, autherror.ErrPasswordPolicy):
		return fiber.StatusBadRequest, ""
	case errors.Is(err, autherror.ErrIncompletePair),
		errors.Is(err, autherror.ErrMissingAssignment),
		errors.Is(err, autherror.ErrInvalidReference),
		errors.Is(err, autherror.ErrAppRefRequired),
		errors.Is(err, autherror.ErrNoChanges),
		errors.Is(err, autherror.ErrInvalidStatus),
		errors.Is(err, autherror.ErrPasswordMismatch):
		return fiber.StatusBadRequest, messageCode(err)
	case errors.Is(err, autherror.ErrIncompleteItem),
		errors.Is(err, autherror.ErrRoleNotFound):
		return fiber.StatusUnprocessableEntity, ""
	case errors.Is(err, autherror.ErrMissingFields):
		return fiber.StatusBadRequest, constant.MissingRequiredFields
	case errors.Is(err, autherror.ErrAppNotFound),
		errors.Is(err, autherror.ErrAssignmentNotFound):
		return fiber.StatusNotFound, ""
	case errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusNotFound, constant.UserNotFound
	case errors.Is(err, autherror.ErrAlreadyAssigned):
		return fiber.StatusConflict, constant.UserAlreadyRegistered
	case errors.Is(err, autherror.ErrInvalidCode):
		return fiber.StatusUnauthorized, constant.InvalidVerificationCode
	case errors.Is(err, autherror.ErrCodeExpired):
		return fiber.StatusUnauthorized, constant.VerificationExpired
	case errors.Is(err, autherror.ErrInvalidOldPassword):
		return fiber.StatusUnauthorized, constant.InvalidOldPassword
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, constant.InvalidCredentials
	case errors.Is(err, autherror.ErrUserNotActive):
		return fiber.StatusForbidden, constant.UserNotActive
	}
	return fiber.StatusInternalServerError, constant.UnexpectedError
}

func messageCode(err error) string {
	if errors.Is(err, autherror.ErrPasswordMismatch) {
		return constant.PasswordsDoNotMatch
	}
	return ""
}

// respondError maps err through errorStatus. Infrastructure failures are
// logged with the route for diagnosis; the client only sees the generic
// message.
func respondError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Printf("error: [%s %s] %v", c.Method(), c.Path(), err)
		message = "An unexpected error occurred."
	}
	return respond(c, status, message, code, nil)
}
