package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utn-integrador-III/security-service/internal/access/dto"
	"github.com/utn-integrador-III/security-service/internal/access/service"
	"github.com/utn-integrador-III/security-service/pkg/constant"
)

type UserHandler struct {
	enrollment   *service.EnrollmentService
	verification *service.VerificationService
	grants       *service.GrantService
	passwords    *service.PasswordService
	sessions     *service.SessionService
}

func NewUserHandler(
	enrollment *service.EnrollmentService,
	verification *service.VerificationService,
	grants *service.GrantService,
	passwords *service.PasswordService,
	sessions *service.SessionService,
) *UserHandler {
	return &UserHandler{
		enrollment:   enrollment,
		verification: verification,
		grants:       grants,
		passwords:    passwords,
		sessions:     sessions,
	}
}

func (h *UserHandler) Enroll(c *fiber.Ctx) error {
	var input dto.EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid input", "", nil)
	}

	result, err := h.enrollment.Enroll(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	if result.Created {
		return respond(c, fiber.StatusCreated,
			"User created successfully and verification code(s) sent.",
			constant.Created, dto.NewUserOutput(result.User))
	}
	return respond(c, fiber.StatusOK,
		"User updated with new role(s) and app(s). Verification code(s) sent.",
		constant.Created, dto.NewUserOutput(result.User))
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.grants.List(c.Context(), c.Query("app_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", "", dto.NewUserOutputs(users))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.grants.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", "", dto.NewUserOutput(user))
}

func (h *UserHandler) PatchGrant(c *fiber.Ctx) error {
	var input dto.PatchGrantInput
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid input", "", nil)
	}

	user, err := h.grants.PatchGrant(c.Context(), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "User app updated", "", dto.NewUserOutput(user))
}

func (h *UserHandler) RevokeAll(c *fiber.Ctx) error {
	user, err := h.grants.RevokeAll(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "All accesses inactivated", "", dto.NewUserOutput(user))
}

func (h *UserHandler) Verify(c *fiber.Ctx) error {
	var input dto.VerifyInput
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid input", "", nil)
	}

	if err := h.verification.Verify(c.Context(), input.Email, input.Code); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "User successfully verified", constant.VerificationSuccessful, nil)
}

func (h *UserHandler) InitiateReset(c *fiber.Ctx) error {
	var input dto.ResetInput
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid input", "", nil)
	}

	if err := h.passwords.InitiateReset(c.Context(), input.Email); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Password reset initiated", constant.PasswordResetInitiated, nil)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid input", "", nil)
	}

	if err := h.passwords.ChangePassword(c.Context(), input); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Password updated successfully", constant.PasswordUpdatedSuccessfully, nil)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, "invalid input", "", nil)
	}

	out, err := h.sessions.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", constant.LoginSuccessful, out)
}
