// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/oliviahealth/Careplan/config"
	"github.com/oliviahealth/Careplan/internal/domain/service"
)

// accessTTL is the fixed validity window of an access token. There is no
// refresh flow; expiry forces re-authentication.
const accessTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    accessTTL,
	}, nil
}

// Issue creates a signed HS256 token carrying the user id, a fresh jti and
// a one-hour expiry.
func (s *jwtService) Issue(userID uuid.UUID) (string, *service.Claims, error) {
	now := time.Now()
	jti := uuid.New().String()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign access token")
	}

	return signed, &service.Claims{
		UserID:    userID,
		TokenID:   jti,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate checks the signature and expiry of a token string and returns
// its claims. Revocation is the caller's concern.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	var registered jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &registered, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	userID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}
	if registered.ID == "" {
		return nil, errors.New("missing jti claim")
	}

	claims := &service.Claims{
		UserID:  userID,
		TokenID: registered.ID,
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}

	return claims, nil
}
