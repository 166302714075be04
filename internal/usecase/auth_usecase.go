package usecase

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/auth_usecase_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase/interfaces"
)

type IAuthUseCase interface {
	Login(ctx context.Context, password string) (string, entities.Session, error)
	Validate(ctx context.Context, token string) (entities.Session, error)
	SessionTTL() time.Duration
}

type AuthSettings struct {
	AdminPassword string
	TeamPassword  string
	TTL           time.Duration
}

type AuthUseCase struct {
	signer   interfaces.ISessionSigner
	settings AuthSettings
	logger   *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(signer interfaces.ISessionSigner, settings AuthSettings, logger *zap.Logger) *AuthUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.AdminPassword == "" {
		logger.Warn("[auth][usecase] no admin password configured, admin login disabled")
	}
	return &AuthUseCase{signer: signer, settings: settings, logger: logger}
}

func passwordMatches(given, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(want)) == 1
}

// Login resolves the password to a role, admin taking precedence.
func (u *AuthUseCase) Login(_ context.Context, password string) (string, entities.Session, error) {
	var role entities.Role
	switch {
	case password == "":
	case passwordMatches(password, u.settings.AdminPassword):
		role = entities.RoleAdmin
	case passwordMatches(password, u.settings.TeamPassword):
		role = entities.RoleTeam
	}
	if role == "" {
		u.logger.Warn("[auth][usecase] login rejected")
		return "", entities.Session{}, ErrInvalidCredentials
	}

	token, session, err := u.signer.Sign(role)
	if err != nil {
		return "", entities.Session{}, fmt.Errorf("sign session: %w", err)
	}
	u.logger.Info("[auth][usecase] login", zap.String("role", string(role)))
	return token, session, nil
}

func (u *AuthUseCase) Validate(_ context.Context, token string) (entities.Session, error) {
	if token == "" {
		return entities.Session{}, ErrInvalidSession
	}
	session, err := u.signer.Verify(token)
	if err != nil {
		return entities.Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !session.Role.IsStaff() {
		return entities.Session{}, ErrInvalidSession
	}
	return session, nil
}

func (u *AuthUseCase) SessionTTL() time.Duration { return u.settings.TTL }
