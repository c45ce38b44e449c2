// Package auth issues and checks the operator tokens guarding the admin
// API. There is a single operator account configured through the
// environment; its password is stored as a bcrypt hash.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"docsuite-ads/internal/config/configs"
	"docsuite-ads/internal/core/port"
)

const issuer = "docsuite-ads"

// OperatorClaims are carried by admin tokens.
type OperatorClaims struct {
	Operator string `json:"op"`
	jwt.RegisteredClaims
}

// Service checks operator credentials and signs HS256 tokens.
type Service struct {
	user         string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewService(cfg configs.Auth) *Service {
	return &Service{
		user:         cfg.AdminUser,
		passwordHash: []byte(cfg.AdminPasswordHash),
		secret:       []byte(cfg.JWTSecret),
		ttl:          cfg.TokenTTL,
		now:          time.Now,
	}
}

// Login verifies the credentials and returns a signed token together with
// its expiry. Wrong credentials yield port.ErrUnauthorized.
func (s *Service) Login(user, password string) (string, time.Time, error) {
	if len(s.passwordHash) == 0 {
		return "", time.Time{}, port.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(s.user)) != 1 {
		return "", time.Time{}, port.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, port.ErrUnauthorized
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := OperatorClaims{
		Operator: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify parses a token and returns its claims. Any problem with the token
// is reported as port.ErrUnauthorized wrapping the cause.
func (s *Service) Verify(token string) (*OperatorClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &OperatorClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrUnauthorized, err)
	}
	if claims, ok := parsed.Claims.(*OperatorClaims); ok && parsed.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("%w: %v", port.ErrUnauthorized, jwt.ErrTokenInvalidClaims)
}

// HashPassword returns the bcrypt hash to put into AUTH_ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
