package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// AccessTokenClaims are the JWT claims minted at login.
type AccessTokenClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Identity converts the claims into a typed caller identity.
func (c AccessTokenClaims) Identity() (Identity, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: userID, Email: c.Email}, nil
}
