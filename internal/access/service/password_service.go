package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	"github.com/utn-integrador-III/security-service/internal/access/dto"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
	"github.com/utn-integrador-III/security-service/pkg/constant"
	"github.com/utn-integrador-III/security-service/pkg/validator"
)

// PasswordService owns the user-level reset and change flows. Reset state
// (code, expiry, temporary credential) lives on the user record, separate
// from any per-grant verification code.
type PasswordService struct {
	repo     domain.UserRepository
	notifier domain.Notifier
	codeGen  CodeGenerator
}

func NewPasswordService(repo domain.UserRepository, notifier domain.Notifier) *PasswordService {
	return &PasswordService{repo: repo, notifier: notifier, codeGen: CryptoCode}
}

// InitiateReset generates a reset code and a temporary credential formed from
// the email's local part plus the code. Only the hash of the temporary
// credential is stored; the plaintext goes out through the notifier,
// best-effort.
func (s *PasswordService) InitiateReset(ctx context.Context, email string) error {
	if email == "" {
		return autherror.ErrMissingFields
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	code := s.codeGen()
	local, _, _ := strings.Cut(email, "@")
	tempPassword := local + code

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	expiration := time.Now().UTC().Add(constant.CodeTTL)
	if err := s.repo.UpdateResetInfo(ctx, email, code, expiration, string(hashed)); err != nil {
		return err
	}

	if err := s.notifier.SendTemporaryPassword(email, tempPassword); err != nil {
		log.Printf("warn: failed to send temporary password to %s: %v", email, err)
	}

	return nil
}

// ChangePassword replaces the stored credential after checking the old one.
// The user must hold at least one Active grant.
func (s *PasswordService) ChangePassword(ctx context.Context, input dto.ChangePasswordInput) error {
	if input.UserEmail == "" || input.OldPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return autherror.ErrMissingFields
	}

	user, err := s.repo.GetByEmail(ctx, input.UserEmail)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if !user.HasActiveGrant() {
		return autherror.ErrUserNotActive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)) != nil {
		return autherror.ErrInvalidOldPassword
	}

	if msg := validator.ValidatePassword(input.NewPassword); msg != "" {
		return fmt.Errorf("%w: %s", autherror.ErrPasswordPolicy, msg)
	}

	if input.NewPassword != input.ConfirmPassword {
		return autherror.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, input.UserEmail, string(hashed))
}
