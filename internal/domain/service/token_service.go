package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of a service token.
type Claims struct {
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the tokens the bot front end presents.
type TokenService interface {
	// IssueServiceToken creates a signed token for a calling service.
	IssueServiceToken(subject string, scopes []string) (string, error)

	// ValidateToken checks signature, issuer and expiry.
	ValidateToken(tokenString string) (*Claims, error)
}
