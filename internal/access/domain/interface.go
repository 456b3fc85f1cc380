package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/utn-integrador-III/security-service/internal/access/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_registries.go -package=mocks github.com/utn-integrador-III/security-service/internal/access/domain RoleRegistry,AppRegistry
//go:generate mockgen -destination=../../mocks/mock_notifier.go -package=mocks github.com/utn-integrador-III/security-service/internal/access/domain Notifier

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserRepository is the persistence gateway for the user aggregate. Lookups
// return (nil, nil) when no document matches.
//
// Two mutation strategies coexist: UpdateGrantFields and RevokeAllGrants are
// conditional, element-targeted updates that leave sibling grants untouched;
// ReplaceGrants rewrites the whole array and is reserved for operations whose
// target cannot be expressed as a stable predicate (the code match during
// verification, and the revocation fallback).
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*User, error)
	Create(ctx context.Context, user *User) (bson.ObjectID, error)
	ReplaceGrants(ctx context.Context, email string, grants []Grant) error
	// UpdateGrantFields applies the given bare field names (status, role,
	// is_session_active, token) to the single grant matching appID. Returns
	// the matched-document count.
	UpdateGrantFields(ctx context.Context, userID, appID bson.ObjectID, fields map[string]any) (int64, error)
	// RevokeAllGrants sets every grant Inactive with no session. Returns the
	// matched-document count; zero means the caller must fall back to a
	// whole-array rewrite.
	RevokeAllGrants(ctx context.Context, userID bson.ObjectID) (int64, error)
	// FindByApp lists users holding a grant for the given application, or all
	// users when appID is nil.
	FindByApp(ctx context.Context, appID *bson.ObjectID) ([]User, error)
	UpdateResetInfo(ctx context.Context, email, code string, expiration time.Time, tempPassword string) error
	UpdatePassword(ctx context.Context, email, hashed string) error
}

// RoleRegistry resolves role names to registry documents. Read-only.
type RoleRegistry interface {
	GetByName(ctx context.Context, name string) (*Role, error)
}

// AppRegistry resolves application names to registry documents. Read-only.
type AppRegistry interface {
	GetByName(ctx context.Context, name string) (*Application, error)
}

// Notifier delivers codes and temporary credentials. Delivery is best-effort:
// callers log failures and never fail the operation over them.
type Notifier interface {
	SendVerificationCode(email, code string) error
	SendTemporaryPassword(email, password string) error
}
