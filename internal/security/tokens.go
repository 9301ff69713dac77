package security

import (
	"crypto"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"org-access-control/internal/identity"
)

// ErrInvalidToken is returned for any token that fails parsing or validation.
var ErrInvalidToken = errors.New("invalid token")

// IdentityClaims are the identity provider's token claims. Subject is the user id.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Name          string `json:"name,omitempty"`
}

// Verifier validates identity tokens signed by the identity provider.
type Verifier struct {
	publicKey crypto.PublicKey
	parser    *jwt.Parser
}

// NewVerifier returns a Verifier for tokens signed with publicKey and carrying the given iss and aud.
func NewVerifier(publicKey crypto.PublicKey, issuer, audience string) (*Verifier, error) {
	method := SigningMethodFor(publicKey)
	if method == nil {
		return nil, ErrInvalidKey
	}
	return &Verifier{
		publicKey: publicKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}, nil
}

// Verify checks signature, exp, iss and aud and returns the caller. The email is only carried over
// when the provider marked it verified.
func (v *Verifier) Verify(token string) (identity.Caller, error) {
	claims := &IdentityClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.publicKey, nil
	})
	if err != nil || claims.Subject == "" {
		return identity.Caller{}, ErrInvalidToken
	}
	c := identity.Caller{UserID: claims.Subject, Name: claims.Name}
	if claims.EmailVerified {
		c.Email = identity.NormalizeEmail(claims.Email)
	}
	return c, nil
}

// Issuer mints identity tokens. Only development seeding and tests use it; production tokens come
// from the identity provider.
type Issuer struct {
	signer   crypto.Signer
	method   jwt.SigningMethod
	issuer   string
	audience string
	ttl      time.Duration
}

// NewIssuer returns an Issuer signing with signer (RS256 or ES256).
func NewIssuer(signer crypto.Signer, issuer, audience string, ttl time.Duration) (*Issuer, error) {
	method := SigningMethodFor(signer.Public())
	if method == nil {
		return nil, ErrInvalidKey
	}
	return &Issuer{signer: signer, method: method, issuer: issuer, audience: audience, ttl: ttl}, nil
}

// Issue returns a signed token for c and its expiry. A non-empty email is marked verified.
func (i *Issuer) Issue(c identity.Caller) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(i.ttl)
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email:         c.Email,
		EmailVerified: c.Email != "",
		Name:          c.Name,
	}
	token, err := jwt.NewWithClaims(i.method, claims).SignedString(i.signer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// IssueClaims signs arbitrary claims. Used by tests to build unverified-email and expired tokens.
func (i *Issuer) IssueClaims(claims IdentityClaims) (string, error) {
	return jwt.NewWithClaims(i.method, claims).SignedString(i.signer)
}
