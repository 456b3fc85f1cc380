package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	"github.com/utn-integrador-III/security-service/internal/access/dto"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
)

// SessionService opens an application session on a verified grant.
type SessionService struct {
	repo     domain.UserRepository
	resolver *Resolver
	tokens   TokenGenerator
}

func NewSessionService(repo domain.UserRepository, resolver *Resolver, tokens TokenGenerator) *SessionService {
	return &SessionService{repo: repo, resolver: resolver, tokens: tokens}
}

// Login checks the credential, requires an Active grant for the requested
// application and stores the minted token on that grant through the
// positional update, marking its session active.
func (s *SessionService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	if input.Email == "" || input.Password == "" || input.App == "" {
		return nil, autherror.ErrMissingFields
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	appID, err := s.resolver.ResolveApp(ctx, input.App)
	if err != nil {
		return nil, err
	}

	grant := user.GrantByApp(appID)
	if grant == nil {
		return nil, autherror.ErrAssignmentNotFound
	}
	if grant.Status != domain.StatusActive {
		return nil, autherror.ErrUserNotActive
	}

	token, expiresAt, err := s.tokens.Generate(user.ID.Hex(), user.Email, grant.Role.Hex(), appID.Hex())
	if err != nil {
		return nil, err
	}

	matched, err := s.repo.UpdateGrantFields(ctx, user.ID, appID, map[string]any{
		"token":             token,
		"is_session_active": true,
	})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, autherror.ErrAssignmentNotFound
	}

	return &dto.LoginOutput{AccessToken: token, ExpiresAt: expiresAt}, nil
}
