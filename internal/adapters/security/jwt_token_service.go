package security

import (
	stderrors "errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// sessionClaims is the JWT payload of a session token
type sessionClaims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// JWTTokenService issues HS256 session tokens
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTTokenService creates a token service; ttl bounds the lifetime of every issued token
func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if secret == "" {
		return nil, errors.NewConfigurationError("JWT secret is required", nil)
	}
	if ttl <= 0 {
		return nil, errors.NewConfigurationError("token TTL must be positive", nil)
	}

	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *JWTTokenService) Issue(userID uint, login string) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Login: login,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.NewConfigurationError("failed to sign token", err)
	}
	return signed, nil
}

func (s *JWTTokenService) Verify(token string) (*ports.TokenClaims, error) {
	if token == "" {
		return nil, errors.NewAuthRequiredError("token is missing")
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewTokenExpiredError("token has expired")
		}
		return nil, errors.NewInvalidTokenError("token is invalid", err)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, errors.NewInvalidTokenError("token subject is invalid", err)
	}

	return &ports.TokenClaims{
		UserID:    uint(userID),
		Login:     claims.Login,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
