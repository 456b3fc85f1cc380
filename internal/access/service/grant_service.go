package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	"github.com/utn-integrador-III/security-service/internal/access/dto"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
)

// GrantService reads users and applies targeted grant mutations.
type GrantService struct {
	repo     domain.UserRepository
	resolver *Resolver
}

func NewGrantService(repo domain.UserRepository, resolver *Resolver) *GrantService {
	return &GrantService{repo: repo, resolver: resolver}
}

// Get fetches a single user by ID.
func (s *GrantService) Get(ctx context.Context, userID string) (*domain.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, autherror.ErrUserNotFound
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	return user, nil
}

// List returns all users, or only those granted the given application when
// appRef (ID or name) is non-empty.
func (s *GrantService) List(ctx context.Context, appRef string) ([]domain.User, error) {
	var appID *bson.ObjectID
	if appRef != "" {
		id, err := s.resolver.ResolveApp(ctx, appRef)
		if err != nil {
			return nil, err
		}
		appID = &id
	}
	return s.repo.FindByApp(ctx, appID)
}

// PatchGrant mutates the single grant addressed by the app reference: status
// (validated against the enum), role (re-resolved, ID or name) and the
// session flag. At least one field is required. The update is conditional and
// positional; sibling grants are never touched.
func (s *GrantService) PatchGrant(ctx context.Context, userID string, input dto.PatchGrantInput) (*domain.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, autherror.ErrUserNotFound
	}

	if input.AppID == "" {
		return nil, autherror.ErrAppRefRequired
	}
	appID, err := s.resolver.ResolveApp(ctx, input.AppID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Status != nil {
		status := domain.GrantStatus(*input.Status)
		if !status.IsValid() {
			return nil, autherror.ErrInvalidStatus
		}
		fields["status"] = status
	}
	if input.Role != nil && *input.Role != "" {
		roleID, err := s.resolver.ResolveRole(ctx, *input.Role)
		if err != nil {
			return nil, err
		}
		fields["role"] = roleID
	}
	if input.IsSessionActive != nil {
		fields["is_session_active"] = *input.IsSessionActive
	}
	if len(fields) == 0 {
		return nil, autherror.ErrNoChanges
	}

	matched, err := s.repo.UpdateGrantFields(ctx, id, appID, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, autherror.ErrAssignmentNotFound
	}

	return s.repo.GetByID(ctx, id)
}

// RevokeAll sets every grant of the user Inactive with no active session.
// The primary path is a single conditional update over all array elements;
// when it matches nothing the whole array is rewritten explicitly, so
// revoking a user with zero grants still succeeds and running it twice
// yields the same state.
func (s *GrantService) RevokeAll(ctx context.Context, userID string) (*domain.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, autherror.ErrUserNotFound
	}

	matched, err := s.repo.RevokeAllGrants(ctx, id)
	if err != nil {
		return nil, err
	}

	if matched == 0 {
		user, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, autherror.ErrUserNotFound
		}

		for i := range user.Apps {
			user.Apps[i].Status = domain.StatusInactive
			user.Apps[i].IsSessionActive = false
		}
		if err := s.repo.ReplaceGrants(ctx, user.Email, user.Apps); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}
