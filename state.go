package simplepass

import (
	"time"

	"github.com/dmitrymomot/simplepass/pkg/secrets"
	"github.com/dmitrymomot/simplepass/pkg/token"
)

// AuthState is the authentication state of a single request.
type AuthState int

const (
	Unauthenticated AuthState = iota
	Authenticated
)

func (s AuthState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Classify computes the state of a request from its session cookie value.
// An empty value is Unauthenticated. A token that is malformed, tampered
// with, sealed under an unknown secret or expired is Unauthenticated too.
// An error means the token could not be checked at all.
func Classify(cookieValue string, reg *secrets.Registry, ttl time.Duration, now time.Time) (AuthState, error) {
	state, _, err := classify(cookieValue, reg, ttl, now)
	return state, err
}

func classify(cookieValue string, reg *secrets.Registry, ttl time.Duration, now time.Time) (AuthState, token.Status, error) {
	if cookieValue == "" {
		return Unauthenticated, token.Malformed, nil
	}

	res, err := token.Unseal(cookieValue, reg, ttl, now)
	if err != nil {
		return Unauthenticated, res.Status, err
	}
	if !res.OK() {
		return Unauthenticated, res.Status, nil
	}
	return Authenticated, res.Status, nil
}
