package jwtx

import "errors"

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Signer is anything that can mint a signed token from claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrWeakSecret   = errors.New("jwtx: secret too short")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)
