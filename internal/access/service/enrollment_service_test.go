package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	"github.com/utn-integrador-III/security-service/internal/access/dto"
	"github.com/utn-integrador-III/security-service/internal/access/service"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
	"github.com/utn-integrador-III/security-service/internal/mocks"
	"github.com/utn-integrador-III/security-service/pkg/constant"
)

func newEnrollmentService(t *testing.T) (*service.EnrollmentService, *mocks.MockUserRepository, *mocks.MockRoleRegistry, *mocks.MockAppRegistry, *mocks.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRoles := mocks.NewMockRoleRegistry(ctrl)
	mockApps := mocks.NewMockAppRegistry(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	resolver := service.NewResolver(mockRoles, mockApps)
	s := service.NewEnrollmentService(mockRepo, resolver, mockNotifier)
	return s, mockRepo, mockRoles, mockApps, mockNotifier
}

func TestEnrollmentService_Enroll_CreatesNewUser(t *testing.T) {
	s, mockRepo, mockRoles, mockApps, mockNotifier := newEnrollmentService(t)

	roleID := bson.NewObjectID()
	appID := bson.NewObjectID()
	userID := bson.NewObjectID()

	input := dto.EnrollInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "Str0ng!Pass",
		RoleName: "admin",
		AppName:  "billing",
	}

	mockRoles.EXPECT().GetByName(gomock.Any(), "admin").Return(&domain.Role{ID: roleID, Name: "admin"}, nil)
	mockApps.EXPECT().GetByName(gomock.Any(), "billing").Return(&domain.Application{ID: appID, Name: "billing"}, nil)
	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)

	var created *domain.User
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.User) (bson.ObjectID, error) {
			created = u
			return userID, nil
		})
	mockNotifier.EXPECT().SendVerificationCode(input.Email, gomock.Any()).Return(nil)

	result, err := s.Enroll(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, userID, result.User.ID)

	require.NotNil(t, created)
	assert.Equal(t, "Ada", created.Name)
	assert.Equal(t, "ada@x.com", created.Email)
	assert.NotEqual(t, input.Password, created.Password)

	require.Len(t, created.Apps, 1)
	grant := created.Apps[0]
	assert.Equal(t, roleID, grant.Role)
	assert.Equal(t, appID, grant.App)
	assert.Equal(t, domain.StatusPending, grant.Status)
	assert.NotEmpty(t, grant.Code)
	assert.Empty(t, grant.Token)
	assert.False(t, grant.IsSessionActive)

	exp, perr := time.ParseInLocation(constant.CodeExpirationLayout, grant.CodeExpiration, time.UTC)
	require.NoError(t, perr)
	assert.WithinDuration(t, time.Now().UTC().Add(constant.CodeTTL), exp, 5*time.Second)
}

func TestEnrollmentService_Enroll_AppendsToExistingUser(t *testing.T) {
	s, mockRepo, _, _, mockNotifier := newEnrollmentService(t)

	roleID := bson.NewObjectID()
	appID := bson.NewObjectID()
	oldRole := bson.NewObjectID()
	oldApp := bson.NewObjectID()

	// references given as canonical hex IDs, so the registries are never hit
	input := dto.EnrollInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "Str0ng!Pass",
		Apps:     []dto.GrantSpec{{Role: roleID.Hex(), App: appID.Hex()}},
	}

	existing := &domain.User{
		ID:    bson.NewObjectID(),
		Name:  "Ada",
		Email: "ada@x.com",
		Apps: []domain.Grant{
			{Role: oldRole, App: oldApp, Status: domain.StatusActive},
		},
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(existing, nil)

	var saved []domain.Grant
	mockRepo.EXPECT().ReplaceGrants(gomock.Any(), input.Email, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, grants []domain.Grant) error {
			saved = grants
			return nil
		})
	mockNotifier.EXPECT().SendVerificationCode(input.Email, gomock.Any()).Return(nil)

	result, err := s.Enroll(context.Background(), input)

	require.NoError(t, err)
	assert.False(t, result.Created)

	// existing grant stays first and untouched, new one is appended
	require.Len(t, saved, 2)
	assert.Equal(t, oldApp, saved[0].App)
	assert.Equal(t, domain.StatusActive, saved[0].Status)
	assert.Equal(t, appID, saved[1].App)
	assert.Equal(t, domain.StatusPending, saved[1].Status)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), saved[1].Code)
}

func TestEnrollmentService_Enroll_DuplicateAgainstExistingGrant(t *testing.T) {
	s, mockRepo, _, _, _ := newEnrollmentService(t)

	roleID := bson.NewObjectID()
	appID := bson.NewObjectID()

	input := dto.EnrollInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "Str0ng!Pass",
		Apps:     []dto.GrantSpec{{Role: roleID.Hex(), App: appID.Hex()}},
	}

	existing := &domain.User{
		Email: "ada@x.com",
		Apps: []domain.Grant{
			// Inactive duplicates block re-enrollment too
			{Role: roleID, App: appID, Status: domain.StatusInactive},
		},
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(existing, nil)

	result, err := s.Enroll(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrAlreadyAssigned)
	assert.Nil(t, result)
}

func TestEnrollmentService_Enroll_DuplicateWithinRequest(t *testing.T) {
	s, _, _, _, _ := newEnrollmentService(t)

	roleID := bson.NewObjectID()
	appID := bson.NewObjectID()

	input := dto.EnrollInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "Str0ng!Pass",
		Apps: []dto.GrantSpec{
			{Role: roleID.Hex(), App: appID.Hex()},
			{Role: roleID.Hex(), App: appID.Hex()},
		},
	}

	result, err := s.Enroll(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrAlreadyAssigned)
	assert.Nil(t, result)
}

func TestEnrollmentService_Enroll_ValidationFailures(t *testing.T) {
	roleID := bson.NewObjectID()
	appID := bson.NewObjectID()
	spec := []dto.GrantSpec{{Role: roleID.Hex(), App: appID.Hex()}}

	testCases := []struct {
		name    string
		input   dto.EnrollInput
		wantErr error
	}{
		{
			name:    "name too short",
			input:   dto.EnrollInput{Name: " A ", Email: "ada@x.com", Password: "Str0ng!Pass", Apps: spec},
			wantErr: autherror.ErrInvalidName,
		},
		{
			name:    "invalid email",
			input:   dto.EnrollInput{Name: "Ada", Email: "not-an-email", Password: "Str0ng!Pass", Apps: spec},
			wantErr: autherror.ErrInvalidEmail,
		},
		{
			name:    "password too short",
			input:   dto.EnrollInput{Name: "Ada", Email: "ada@x.com", Password: "Ab1!", Apps: spec},
			wantErr: autherror.ErrInvalidPassword,
		},
		{
			name:    "password fails policy",
			input:   dto.EnrollInput{Name: "Ada", Email: "ada@x.com", Password: "alllowercase1!", Apps: spec},
			wantErr: autherror.ErrPasswordPolicy,
		},
		{
			name:    "pair shape requires both fields",
			input:   dto.EnrollInput{Name: "Ada", Email: "ada@x.com", Password: "Str0ng!Pass", RoleName: "admin"},
			wantErr: autherror.ErrIncompletePair,
		},
		{
			name: "batch item missing role",
			input: dto.EnrollInput{Name: "Ada", Email: "ada@x.com", Password: "Str0ng!Pass",
				Apps: []dto.GrantSpec{{App: appID.Hex()}}},
			wantErr: autherror.ErrIncompleteItem,
		},
		{
			name:    "no assignments at all",
			input:   dto.EnrollInput{Name: "Ada", Email: "ada@x.com", Password: "Str0ng!Pass"},
			wantErr: autherror.ErrMissingAssignment,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _, _, _ := newEnrollmentService(t)

			result, err := s.Enroll(context.Background(), tc.input)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestEnrollmentService_Enroll_UnknownRoleName(t *testing.T) {
	s, _, mockRoles, _, _ := newEnrollmentService(t)

	input := dto.EnrollInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "Str0ng!Pass",
		Apps:     []dto.GrantSpec{{Role: "ghost", App: "billing"}},
	}

	mockRoles.EXPECT().GetByName(gomock.Any(), "ghost").Return(nil, nil)

	result, err := s.Enroll(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrRoleNotFound)
	assert.Nil(t, result)
}

func TestEnrollmentService_Enroll_NotifierFailureIsNonFatal(t *testing.T) {
	s, mockRepo, _, _, mockNotifier := newEnrollmentService(t)

	roleID := bson.NewObjectID()
	appID := bson.NewObjectID()

	input := dto.EnrollInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "Str0ng!Pass",
		Apps:     []dto.GrantSpec{{Role: roleID.Hex(), App: appID.Hex()}},
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bson.NewObjectID(), nil)
	mockNotifier.EXPECT().SendVerificationCode(input.Email, gomock.Any()).Return(errors.New("smtp down"))

	result, err := s.Enroll(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestEnrollmentService_Enroll_PersistenceFailure(t *testing.T) {
	s, mockRepo, _, _, _ := newEnrollmentService(t)

	roleID := bson.NewObjectID()
	appID := bson.NewObjectID()

	input := dto.EnrollInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "Str0ng!Pass",
		Apps:     []dto.GrantSpec{{Role: roleID.Hex(), App: appID.Hex()}},
	}

	expectedErr := errors.New("write failed")
	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bson.NilObjectID, expectedErr)

	result, err := s.Enroll(context.Background(), input)

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, result)
}

func TestEnrollmentService_Enroll_CombinedShapes(t *testing.T) {
	s, mockRepo, mockRoles, mockApps, mockNotifier := newEnrollmentService(t)

	pairRole := bson.NewObjectID()
	pairApp := bson.NewObjectID()
	batchRole := bson.NewObjectID()
	batchApp := bson.NewObjectID()

	input := dto.EnrollInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "Str0ng!Pass",
		RoleName: "admin",
		AppName:  "billing",
		Apps:     []dto.GrantSpec{{Role: batchRole.Hex(), App: batchApp.Hex()}},
	}

	mockRoles.EXPECT().GetByName(gomock.Any(), "admin").Return(&domain.Role{ID: pairRole, Name: "admin"}, nil)
	mockApps.EXPECT().GetByName(gomock.Any(), "billing").Return(&domain.Application{ID: pairApp, Name: "billing"}, nil)
	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)

	var created *domain.User
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.User) (bson.ObjectID, error) {
			created = u
			return bson.NewObjectID(), nil
		})
	mockNotifier.EXPECT().SendVerificationCode(input.Email, gomock.Any()).Return(nil).Times(2)

	result, err := s.Enroll(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, result.Created)

	// pair grant first, batch grants after, each with its own code policy
	require.Len(t, created.Apps, 2)
	assert.Equal(t, pairApp, created.Apps[0].App)
	assert.Equal(t, batchApp, created.Apps[1].App)
	assert.NotEqual(t, created.Apps[0].Code, created.Apps[1].Code)
	assert.Regexp(t, `^[1-9]\d{5}$`, created.Apps[1].Code)
}
