package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	"github.com/utn-integrador-III/security-service/internal/access/dto"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
	"github.com/utn-integrador-III/security-service/pkg/constant"
	"github.com/utn-integrador-III/security-service/pkg/validator"
)

// EnrollmentService creates users and appends access grants to existing ones.
type EnrollmentService struct {
	repo     domain.UserRepository
	resolver *Resolver
	notifier domain.Notifier
	// code policies per input shape
	pairCode  CodeGenerator
	batchCode CodeGenerator
}

func NewEnrollmentService(repo domain.UserRepository, resolver *Resolver, notifier domain.Notifier) *EnrollmentService {
	return &EnrollmentService{
		repo:      repo,
		resolver:  resolver,
		notifier:  notifier,
		pairCode:  CryptoCode,
		batchCode: NumericCode,
	}
}

// EnrollResult reports whether enrollment created a new user or extended an
// existing one. Both are success outcomes.
type EnrollResult struct {
	Created bool
	User    *domain.User
}

// Enroll validates the input, builds one Pending grant per requested
// (role, app) pair and persists them, creating the user if needed. A pair
// that duplicates an existing grant, or another pair in the same request,
// fails the whole enrollment; nothing is written. Verification-code delivery
// is best-effort and never fails the request.
func (s *EnrollmentService) Enroll(ctx context.Context, input dto.EnrollInput) (*EnrollResult, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < constant.MinNameLength {
		return nil, autherror.ErrInvalidName
	}

	email := strings.TrimSpace(input.Email)
	if email == "" || !validator.IsEmailValid(email) {
		return nil, autherror.ErrInvalidEmail
	}

	if len(input.Password) < constant.MinPasswordLength {
		return nil, autherror.ErrInvalidPassword
	}
	if msg := validator.ValidatePassword(input.Password); msg != "" {
		return nil, fmt.Errorf("%w: %s", autherror.ErrPasswordPolicy, msg)
	}

	grants, err := s.buildGrants(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(grants) == 0 {
		return nil, autherror.ErrMissingAssignment
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		for _, g := range grants {
			if IsDuplicate(existing.Apps, g) {
				return nil, autherror.ErrAlreadyAssigned
			}
		}

		existing.Apps = append(existing.Apps, grants...)
		if err := s.repo.ReplaceGrants(ctx, email, existing.Apps); err != nil {
			return nil, err
		}

		s.dispatchCodes(email, grants)

		return &EnrollResult{Created: false, User: existing}, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Apps:     grants,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.dispatchCodes(email, grants)

	return &EnrollResult{Created: true, User: user}, nil
}

// buildGrants resolves both input shapes into Pending grants. The pair shape
// is both-or-neither; every batch item must carry both references. A pair
// repeated within the request is a conflict.
func (s *EnrollmentService) buildGrants(ctx context.Context, input dto.EnrollInput) ([]domain.Grant, error) {
	var grants []domain.Grant

	if input.RoleName != "" || input.AppName != "" {
		if input.RoleName == "" || input.AppName == "" {
			return nil, autherror.ErrIncompletePair
		}

		roleID, err := s.resolver.ResolveRole(ctx, input.RoleName)
		if err != nil {
			return nil, err
		}
		appID, err := s.resolver.ResolveApp(ctx, input.AppName)
		if err != nil {
			return nil, err
		}

		g, err := BuildGrant(roleID, appID, s.pairCode)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}

	for _, item := range input.Apps {
		if item.Role == "" || item.App == "" {
			return nil, autherror.ErrIncompleteItem
		}

		roleID, err := s.resolver.ResolveRole(ctx, item.Role)
		if err != nil {
			return nil, err
		}
		appID, err := s.resolver.ResolveApp(ctx, item.App)
		if err != nil {
			return nil, err
		}

		g, err := BuildGrant(roleID, appID, s.batchCode)
		if err != nil {
			return nil, err
		}
		if IsDuplicate(grants, g) {
			return nil, autherror.ErrAlreadyAssigned
		}
		grants = append(grants, g)
	}

	return grants, nil
}

func (s *EnrollmentService) dispatchCodes(email string, grants []domain.Grant) {
	for _, g := range grants {
		if err := s.notifier.SendVerificationCode(email, g.Code); err != nil {
			log.Printf("warn: failed to send verification code to %s: %v", email, err)
		}
	}
}
