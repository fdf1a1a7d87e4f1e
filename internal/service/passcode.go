package service

import (
	"crypto/subtle"

	"portfolio-back/internal/apperrors"
)

// PasscodeVerifier authorizes access to the admin contact listing. The
// interface exists so the comparison strategy can change (rate limiting,
// hashed secrets) without touching the request/response contract.
type PasscodeVerifier interface {
	Verify(candidate string) error
}

// StaticPasscode compares against a single process-wide secret configured at
// startup. An empty configured secret never matches anything, including an
// empty candidate.
type StaticPasscode struct {
	secret string
}

func NewStaticPasscode(secret string) *StaticPasscode {
	return &StaticPasscode{secret: secret}
}

func (p *StaticPasscode) Verify(candidate string) error {
	if p.secret == "" {
		return apperrors.ErrPasscodeNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(p.secret), []byte(candidate)) != 1 {
		return apperrors.ErrInvalidPasscode
	}

	return nil
}
