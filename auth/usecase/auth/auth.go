package auth

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	ormKit "github.com/shakti7/Price-Optimization-BE/kit/orm"
	utilKit "github.com/shakti7/Price-Optimization-BE/kit/util"
)

const (
	accessTokenDuration  = 30 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour
)

type authUseCase struct {
	accountRepo domain.AccountRepo
	tokenRepo   domain.TokenRepo
}

func CreateAuthUseCase(accountRepo domain.AccountRepo, tokenRepo domain.TokenRepo) domain.AuthUseCase {
	return &authUseCase{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
	}
}

// Login answers an unknown email and a wrong password with the same error,
// so the endpoint does not leak which emails are registered.
func (a *authUseCase) Login(email, password string) (*domain.Account, error) {
	account, err := a.accountRepo.GetByEmail(email)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.PasswordInvalid)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}

	if err := utilKit.CompareBcrypt([]byte(account.Password), []byte(password)); err != nil {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.PasswordInvalid)
	}

	if !account.IsVerified {
		return nil, code.CreateErrorCode(http.StatusForbidden).AddCode(code.NotVerified)
	}

	now := time.Now()
	accessToken, err := a.tokenRepo.GenerateToken(account.Email, now, now.Add(accessTokenDuration))
	if err != nil {
		return nil, errors.Wrap(err, "generate access token failed")
	}
	refreshToken, err := a.tokenRepo.GenerateToken(account.Email, now, now.Add(refreshTokenDuration))
	if err != nil {
		return nil, errors.Wrap(err, "generate refresh token failed")
	}

	account.AccessToken = accessToken
	account.RefreshToken = refreshToken

	return account, nil
}

func (a *authUseCase) VerifyEmail(verificationCode string) error {
	account, err := a.accountRepo.GetByVerificationCode(verificationCode)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidVerificationCode)
	} else if err != nil {
		return errors.Wrap(err, "get account failed")
	}

	ok, err := a.accountRepo.SetVerified(account.ID, verificationCode)
	if err != nil {
		return errors.Wrap(err, "set verified failed")
	}
	if !ok {
		// code was redeemed between lookup and update
		return code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidVerificationCode)
	}

	return nil
}

func (a *authUseCase) RefreshAccessToken(refreshToken string) (string, error) {
	email, err := a.tokenRepo.VerifyToken(refreshToken)
	if errors.Is(err, domain.ErrInvalidData) {
		return "", code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.TokenInvalid)
	} else if err != nil {
		return "", errors.Wrap(err, "verify token failed")
	}

	now := time.Now()
	accessToken, err := a.tokenRepo.GenerateToken(email, now, now.Add(accessTokenDuration))
	if err != nil {
		return "", errors.Wrap(err, "generate access token failed")
	}

	return accessToken, nil
}

func (a *authUseCase) Authorize(accessToken string) (*domain.Account, error) {
	if accessToken == "" {
		return nil, code.CreateErrorCode(http.StatusUnauthorized)
	}

	email, err := a.tokenRepo.VerifyToken(accessToken)
	if errors.Is(err, domain.ErrInvalidData) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.TokenInvalid)
	} else if err != nil {
		return nil, errors.Wrap(err, "verify token failed")
	}

	account, err := a.accountRepo.GetByEmail(email)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.TokenInvalid)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}

	return account, nil
}
