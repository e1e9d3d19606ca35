package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretSize is the smallest HMAC secret we accept (256 bits).
const MinSecretSize = 32

// HS256 signs and verifies session tokens with a shared HMAC secret. Session
// tokens never leave this service, so there is no need for published keys.
type HS256 struct {
	secret   []byte
	issuer   string
	audience []string
}

// NewHS256 builds a signer/verifier pair around secret.
func NewHS256(secret []byte, issuer string, audience []string) (*HS256, error) {
	if len(secret) < MinSecretSize {
		return nil, ErrWeakSecret
	}
	return &HS256{
		secret:   append([]byte(nil), secret...),
		issuer:   issuer,
		audience: audience,
	}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Issuer returns the iss value tokens are minted with.
func (h *HS256) Issuer() string { return h.issuer }

// Audience returns the aud values tokens are minted with.
func (h *HS256) Audience() []string { return h.audience }

// Sign serialises claims into a compact JWT.
func (h *HS256) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	s, err := token.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return s, nil
}

// Verify validates the signature and the iss/aud/exp claims.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		}
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(h.audience); err != nil {
		return Claims{}, err
	}
	if claims.SID == "" {
		return Claims{}, ErrInvalidClaim
	}

	return *claims, nil
}
