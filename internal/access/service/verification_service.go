package service

import (
	"context"
	"time"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
	"github.com/utn-integrador-III/security-service/pkg/constant"
)

// VerificationService consumes one-time codes, activating the single grant
// the submitted code belongs to.
type VerificationService struct {
	repo domain.UserRepository
}

func NewVerificationService(repo domain.UserRepository) *VerificationService {
	return &VerificationService{repo: repo}
}

// Verify matches the submitted code against the user's grants and activates
// the first match, clearing its code and expiry. The code is the selector, so
// the rewrite has to go through the whole array; sibling grants are written
// back unchanged. An expiry that fails to parse does not block verification.
func (s *VerificationService) Verify(ctx context.Context, email, code string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	target := -1
	if code != "" {
		for i := range user.Apps {
			if user.Apps[i].Code == code {
				target = i
				break
			}
		}
	}
	if target < 0 {
		return autherror.ErrInvalidCode
	}

	if exp, perr := time.ParseInLocation(constant.CodeExpirationLayout, user.Apps[target].CodeExpiration, time.UTC); perr == nil {
		if time.Now().UTC().After(exp) {
			return autherror.ErrCodeExpired
		}
	}

	user.Apps[target].Status = domain.StatusActive
	user.Apps[target].Code = ""
	user.Apps[target].CodeExpiration = ""

	return s.repo.ReplaceGrants(ctx, email, user.Apps)
}
