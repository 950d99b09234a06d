package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/user/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      *dto.UserDTO `json:"user"`
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	throttle LoginThrottle
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	throttle LoginThrottle,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	if uc.throttle != nil {
		allowed, err := uc.throttle.Allow(cmd.Email)
		if err != nil {
			// Redis being down must not lock everyone out.
			uc.logger.Warnw("login throttle check failed", "error", err)
		} else if !allowed {
			uc.logger.Warnw("login rate limit hit", "email", cmd.Email)
			return nil, errors.NewUnauthorizedError("too many login attempts, try again later")
		}
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login timestamp", "user_id", u.ID(), "error", err)
	}

	token, expiresIn, err := uc.tokens.Generate(u.Actor())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.ToUserDTO(u),
	}, nil
}
