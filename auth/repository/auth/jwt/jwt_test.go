package jwt

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/stretchr/testify/assert"
)

func TestTokenRepo(t *testing.T) {
	tokenRepo, err := CreateTokenRepo("test-secret")
	assert.Nil(t, err)

	t.Run("round trip returns subject", func(t *testing.T) {
		now := time.Now()
		token, err := tokenRepo.GenerateToken("user@example.com", now, now.Add(time.Hour))
		assert.Nil(t, err)
		assert.NotEmpty(t, token)

		subject, err := tokenRepo.VerifyToken(token)
		assert.Nil(t, err)
		assert.Equal(t, "user@example.com", subject)
	})

	t.Run("expired token is invalid data", func(t *testing.T) {
		now := time.Now()
		token, err := tokenRepo.GenerateToken("user@example.com", now.Add(-2*time.Hour), now.Add(-time.Hour))
		assert.Nil(t, err)

		_, err = tokenRepo.VerifyToken(token)
		assert.True(t, errors.Is(err, domain.ErrInvalidData))
	})

	t.Run("garbage token is invalid data", func(t *testing.T) {
		_, err := tokenRepo.VerifyToken("not-a-token")
		assert.True(t, errors.Is(err, domain.ErrInvalidData))
	})

	t.Run("token signed with another secret is invalid data", func(t *testing.T) {
		otherRepo, err := CreateTokenRepo("other-secret")
		assert.Nil(t, err)

		now := time.Now()
		token, err := otherRepo.GenerateToken("user@example.com", now, now.Add(time.Hour))
		assert.Nil(t, err)

		_, err = tokenRepo.VerifyToken(token)
		assert.True(t, errors.Is(err, domain.ErrInvalidData))
	})

	t.Run("empty secret rejected", func(t *testing.T) {
		_, err := CreateTokenRepo("")
		assert.NotNil(t, err)
	})
}
