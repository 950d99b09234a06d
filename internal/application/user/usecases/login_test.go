package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

func TestLoginUseCase_Success(t *testing.T) {
	u := testUser(t, 5, "Dana Reeve", "dana@example.com", authorization.RoleUser, 7)
	var updated bool
	userRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "dana@example.com", email)
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = true
			return nil
		},
	}
	tokens := &mockTokenIssuer{
		GenerateFunc: func(actor authorization.Actor) (string, int64, error) {
			assert.Equal(t, uint(5), actor.UserID)
			assert.Equal(t, authorization.RoleUser, actor.Role)
			return "jwt-token", 86400, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, tokens, &mockLoginThrottle{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "dana@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, int64(86400), result.ExpiresIn)
	assert.Equal(t, uint(5), result.User.ID)
	assert.True(t, updated, "login timestamp should be persisted")
	require.NotNil(t, u.LastLoginAt())
}

func TestLoginUseCase_ThrottledAttemptRejected(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			require.Fail(t, "credentials must not be checked when throttled")
			return nil, nil
		},
	}
	throttle := &mockLoginThrottle{
		AllowFunc: func(email string) (bool, error) { return false, nil },
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, throttle, logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "dana@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_ThrottleOutageDoesNotBlockLogin(t *testing.T) {
	u := testUser(t, 5, "Dana Reeve", "dana@example.com", authorization.RoleUser, 7)
	userRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}
	throttle := &mockLoginThrottle{
		AllowFunc: func(email string) (bool, error) {
			return false, errors.NewInternalError("redis unreachable")
		},
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, throttle, logger.NewNop())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "dana@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	u := testUser(t, 5, "Dana Reeve", "dana@example.com", authorization.RoleUser, 7)
	userRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockLoginThrottle{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "dana@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockLoginThrottle{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Contains(t, appErr.Message, "invalid email or password")
}

func TestLoginUseCase_DeactivatedAccount(t *testing.T) {
	u := testUser(t, 5, "Dana Reeve", "dana@example.com", authorization.RoleUser, 7)
	u.Deactivate()
	userRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, &mockLoginThrottle{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "dana@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
