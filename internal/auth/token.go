package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/recipevault/recipevault/internal/config"
	"github.com/recipevault/recipevault/internal/entities"
)

// signingMethod is the only algorithm issued or accepted. Pinning it on
// the validation side closes the algorithm-substitution forgery: a token
// whose header names any other method is rejected before signature
// checking.
const signingMethod = "HS256"

// tokenClaims is the signed payload: the authenticated identity plus the
// registered issuance/expiry claims.
type tokenClaims struct {
	jwt.RegisteredClaims
	User entities.Identity `json:"user"`
}

// TokenManager signs and validates bearer tokens with a single shared
// secret. Validation trusts the embedded identity for the token lifetime
// and performs no store lookup, so revocation before expiry is not
// possible.
type TokenManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenManager creates a token manager from auth configuration.
func NewTokenManager(cfg config.Auth) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiry,
		now:    time.Now,
	}
}

// Issue signs a bearer token embedding the given identity.
func (tm *TokenManager) Issue(identity entities.Identity) (string, error) {
	now := tm.now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
		},
		User: identity,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate checks the token's signature, algorithm, and expiry, and
// returns the embedded identity verbatim. Malformed, forged, or expired
// tokens produce an error, never a panic.
func (tm *TokenManager) Validate(tokenString string) (entities.Identity, error) {
	if tokenString == "" {
		return entities.Identity{}, ErrInvalidToken
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod}),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		return entities.Identity{}, mapJWTError(err)
	}

	if parsed.User.Username == "" {
		return entities.Identity{}, ErrInvalidToken
	}
	return parsed.User, nil
}

// mapJWTError translates jwt library errors to the auth taxonomy.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrTokenExpired
	}
	return ErrInvalidToken
}
