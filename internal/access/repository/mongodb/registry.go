package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
)

// RoleRegistry reads the roles collection. Lookup only; roles are managed
// elsewhere.
type RoleRegistry struct {
	roles *mongo.Collection
}

func NewRoleRegistry(db *mongo.Database) *RoleRegistry {
	return &RoleRegistry{roles: db.Collection("roles")}
}

func (r *RoleRegistry) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.roles.FindOne(ctx, bson.M{"name": name}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}
	return &role, nil
}

// AppRegistry reads the applications collection. Lookup only.
type AppRegistry struct {
	apps *mongo.Collection
}

func NewAppRegistry(db *mongo.Database) *AppRegistry {
	return &AppRegistry{apps: db.Collection("applications")}
}

func (r *AppRegistry) GetByName(ctx context.Context, name string) (*domain.Application, error) {
	var app domain.Application
	err := r.apps.FindOne(ctx, bson.M{"name": name}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application by name: %w", err)
	}
	return &app, nil
}
