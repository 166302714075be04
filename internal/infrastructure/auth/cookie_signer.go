package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clientportal/internal/domain/entities"
)

const issuer = "clientportal"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingSecret  = errors.New("cookie secret not configured")
	ErrInvalidRoleTTL = errors.New("invalid role or ttl")
)

type sessionClaims struct {
	Role entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// CookieSigner issues and validates the HS256 token stored in the admin-auth
// cookie.
type CookieSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCookieSigner(secret string, ttl time.Duration) (*CookieSigner, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, ErrInvalidRoleTTL
	}
	return &CookieSigner{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *CookieSigner) TTL() time.Duration { return s.ttl }

func (s *CookieSigner) Sign(role entities.Role) (string, entities.Session, error) {
	if !role.IsValid() {
		return "", entities.Session{}, ErrInvalidRoleTTL
	}
	now := s.now().UTC()
	exp := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", entities.Session{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, entities.Session{Role: role, ExpiresAt: exp}, nil
}

func (s *CookieSigner) Verify(tokenString string) (entities.Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Session{}, ErrExpiredToken
		}
		return entities.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || !claims.Role.IsValid() || claims.ExpiresAt == nil {
		return entities.Session{}, ErrInvalidToken
	}
	return entities.Session{Role: claims.Role, ExpiresAt: claims.ExpiresAt.Time}, nil
}
