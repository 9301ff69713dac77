package interceptors

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"org-access-control/internal/security"
)

func jwtClaims(subject string, issuedAt, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    security.TestIssuer,
		Audience:  jwt.ClaimStrings{security.TestAudience},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}
