package domain

import "time"

// TokenRepo signs and checks self-contained bearer tokens. Tokens are never
// persisted; verification is a pure function of token, clock and secret.
type TokenRepo interface {
	GenerateToken(subject string, iat, exp time.Time) (string, error)
	// VerifyToken returns the subject only for a well-formed, correctly
	// signed, unexpired token. Expired, tampered and malformed tokens are
	// indistinguishable to the caller.
	VerifyToken(token string) (subject string, err error)
}

type AuthUseCase interface {
	Login(email, password string) (*Account, error)
	VerifyEmail(verificationCode string) error
	RefreshAccessToken(refreshToken string) (accessToken string, err error)
	// Authorize resolves a presented access token to its account. It backs
	// the guard that runs before every product and profile operation.
	Authorize(accessToken string) (*Account, error)
}
