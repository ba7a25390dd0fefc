package domain

import "time"

type Account struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Password         string  `json:"-"`
	IsVerified       bool    `json:"is_verified"`
	VerificationCode *string `json:"-"`

	AccessToken  string `gorm:"-" json:"-"`
	RefreshToken string `gorm:"-" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type AccountRepo interface {
	Create(firstName, lastName, email, passwordHash, verificationCode string) (*Account, error)
	Get(userID int64) (*Account, error)
	GetByEmail(email string) (*Account, error)
	GetByVerificationCode(code string) (*Account, error)
	// SetVerified marks the account verified and clears the code in one
	// statement guarded by the code itself, so a redeemed code cannot be
	// replayed. Returns false when the guard did not match.
	SetVerified(userID int64, verificationCode string) (bool, error)
	Delete(userID int64) error
}

type AccountUseCase interface {
	Register(firstName, lastName, email, password string) (*Account, error)
	Get(userID int64) (*Account, error)
	Delete(userID int64) error
}
