package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

func TestRegisterUseCase_CreatesOrganizationAndUser(t *testing.T) {
	var createdUser *user.User
	userRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, u *user.User) error {
			createdUser = u
			return u.SetID(10)
		},
	}
	orgRepo := &mockOrganizationRepository{
		CreateFunc: func(ctx context.Context, o *organization.Organization) error {
			return o.SetID(7)
		},
	}

	uc := NewRegisterUseCase(userRepo, orgRepo, &mockPasswordHasher{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Name:        "Dana Reeve",
		Email:       "dana@example.com",
		Password:    "secret",
		CompanyName: "Reeve Media",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(10), result.UserID)
	assert.Equal(t, uint(7), result.OrganizationID)
	require.NotNil(t, createdUser)
	assert.Equal(t, authorization.RoleUser, createdUser.Role())
	assert.Equal(t, uint(7), createdUser.OrganizationID())
	assert.Equal(t, "Reeve Media", createdUser.CompanyName())
	assert.Equal(t, "hashed:secret", createdUser.PasswordHash())
}

func TestRegisterUseCase_DuplicateEmailRejected(t *testing.T) {
	userRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
		CreateFunc: func(ctx context.Context, u *user.User) error {
			require.Fail(t, "user must not be created")
			return nil
		},
	}
	orgRepo := &mockOrganizationRepository{
		CreateFunc: func(ctx context.Context, o *organization.Organization) error {
			require.Fail(t, "organization must not be created")
			return nil
		},
	}

	uc := NewRegisterUseCase(userRepo, orgRepo, &mockPasswordHasher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Dana Reeve",
		Email:    "dana@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestRegisterUseCase_OrganizationNameDefaultsToUserName(t *testing.T) {
	var orgName string
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			return u.SetID(10)
		},
	}
	orgRepo := &mockOrganizationRepository{
		CreateFunc: func(ctx context.Context, o *organization.Organization) error {
			orgName = o.Name()
			return o.SetID(7)
		},
	}

	uc := NewRegisterUseCase(userRepo, orgRepo, &mockPasswordHasher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Dana Reeve",
		Email:    "dana@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Reeve", orgName)
}
