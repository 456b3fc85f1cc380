package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
)

// Resolver turns a caller-supplied role or application reference into its
// canonical ObjectID. A reference is either a well-formed hex ID, taken as-is,
// or a name looked up in the corresponding registry.
type Resolver struct {
	roles domain.RoleRegistry
	apps  domain.AppRegistry
}

func NewResolver(roles domain.RoleRegistry, apps domain.AppRegistry) *Resolver {
	return &Resolver{roles: roles, apps: apps}
}

func (r *Resolver) ResolveRole(ctx context.Context, ref string) (bson.ObjectID, error) {
	if strings.TrimSpace(ref) == "" {
		return bson.NilObjectID, autherror.ErrInvalidReference
	}

	if id, err := bson.ObjectIDFromHex(ref); err == nil {
		return id, nil
	}

	role, err := r.roles.GetByName(ctx, ref)
	if err != nil {
		return bson.NilObjectID, err
	}
	if role == nil || role.ID.IsZero() {
		return bson.NilObjectID, autherror.ErrRoleNotFound
	}

	return role.ID, nil
}

func (r *Resolver) ResolveApp(ctx context.Context, ref string) (bson.ObjectID, error) {
	if strings.TrimSpace(ref) == "" {
		return bson.NilObjectID, autherror.ErrInvalidReference
	}

	if id, err := bson.ObjectIDFromHex(ref); err == nil {
		return id, nil
	}

	app, err := r.apps.GetByName(ctx, ref)
	if err != nil {
		return bson.NilObjectID, err
	}
	if app == nil || app.ID.IsZero() {
		return bson.NilObjectID, autherror.ErrAppNotFound
	}

	return app.ID, nil
}
