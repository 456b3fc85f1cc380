package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	"github.com/utn-integrador-III/security-service/internal/access/service"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
	"github.com/utn-integrador-III/security-service/internal/mocks"
)

func newResolver(t *testing.T) (*service.Resolver, *mocks.MockRoleRegistry, *mocks.MockAppRegistry) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRoles := mocks.NewMockRoleRegistry(ctrl)
	mockApps := mocks.NewMockAppRegistry(ctrl)
	return service.NewResolver(mockRoles, mockApps), mockRoles, mockApps
}

func TestResolver_ResolveRole_DirectID(t *testing.T) {
	r, _, _ := newResolver(t)

	roleID := bson.NewObjectID()

	// a well-formed hex ID never hits the registry
	got, err := r.ResolveRole(context.Background(), roleID.Hex())

	require.NoError(t, err)
	assert.Equal(t, roleID, got)
}

func TestResolver_ResolveRole_NameFallback(t *testing.T) {
	r, mockRoles, _ := newResolver(t)

	roleID := bson.NewObjectID()
	mockRoles.EXPECT().GetByName(gomock.Any(), "admin").Return(&domain.Role{ID: roleID, Name: "admin"}, nil)

	got, err := r.ResolveRole(context.Background(), "admin")

	require.NoError(t, err)
	assert.Equal(t, roleID, got)
}

func TestResolver_ResolveRole_NotFound(t *testing.T) {
	r, mockRoles, _ := newResolver(t)

	mockRoles.EXPECT().GetByName(gomock.Any(), "ghost").Return(nil, nil)

	_, err := r.ResolveRole(context.Background(), "ghost")

	assert.ErrorIs(t, err, autherror.ErrRoleNotFound)
}

func TestResolver_ResolveRole_EmptyReference(t *testing.T) {
	r, _, _ := newResolver(t)

	_, err := r.ResolveRole(context.Background(), "   ")

	assert.ErrorIs(t, err, autherror.ErrInvalidReference)
}

func TestResolver_ResolveRole_RegistryError(t *testing.T) {
	r, mockRoles, _ := newResolver(t)

	expectedErr := errors.New("registry down")
	mockRoles.EXPECT().GetByName(gomock.Any(), "admin").Return(nil, expectedErr)

	_, err := r.ResolveRole(context.Background(), "admin")

	assert.ErrorIs(t, err, expectedErr)
}

func TestResolver_ResolveApp_DirectID(t *testing.T) {
	r, _, _ := newResolver(t)

	appID := bson.NewObjectID()

	got, err := r.ResolveApp(context.Background(), appID.Hex())

	require.NoError(t, err)
	assert.Equal(t, appID, got)
}

func TestResolver_ResolveApp_NameFallback(t *testing.T) {
	r, _, mockApps := newResolver(t)

	appID := bson.NewObjectID()
	mockApps.EXPECT().GetByName(gomock.Any(), "billing").Return(&domain.Application{ID: appID, Name: "billing"}, nil)

	got, err := r.ResolveApp(context.Background(), "billing")

	require.NoError(t, err)
	assert.Equal(t, appID, got)
}

func TestResolver_ResolveApp_NotFound(t *testing.T) {
	r, _, mockApps := newResolver(t)

	mockApps.EXPECT().GetByName(gomock.Any(), "ghost").Return(nil, nil)

	_, err := r.ResolveApp(context.Background(), "ghost")

	assert.ErrorIs(t, err, autherror.ErrAppNotFound)
}
