package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wishlane-app/wishlane-backend/pkg/config"
)

var (
	// ErrTokenInvalid covers malformed, mis-signed, or expired tokens.
	ErrTokenInvalid = errors.New("invalid access token")
)

// MintAccessToken signs an HS256 token for the user and returns the token
// string plus the jti used as the session handle.
func MintAccessToken(cfg config.JWTConfig, userID uuid.UUID, email string) (string, string, error) {
	if cfg.Secret == "" {
		return "", "", errors.New("jwt secret is required")
	}

	now := time.Now().UTC()
	jti := uuid.NewString()
	claims := AccessTokenClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, jti, nil
}

// ParseAccessToken validates the signature, issuer, and expiry of a token.
func ParseAccessToken(cfg config.JWTConfig, tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.ID == "" || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
