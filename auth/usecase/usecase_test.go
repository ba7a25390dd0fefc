package usecase

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	accountMySQLRepo "github.com/shakti7/Price-Optimization-BE/auth/repository/account/mysql"
	jwtRepo "github.com/shakti7/Price-Optimization-BE/auth/repository/auth/jwt"
	"github.com/shakti7/Price-Optimization-BE/auth/usecase/account"
	"github.com/shakti7/Price-Optimization-BE/auth/usecase/auth"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	loggerKit "github.com/shakti7/Price-Optimization-BE/kit/logger"
	ormKit "github.com/shakti7/Price-Optimization-BE/kit/orm"
)

type sentMail struct {
	email            string
	verificationCode string
}

type fakeMailRepo struct {
	sent chan sentMail
}

func (f *fakeMailRepo) SendVerificationMail(email, verificationCode string) error {
	f.sent <- sentMail{email: email, verificationCode: verificationCode}
	return nil
}

func TestAuthFlow(t *testing.T) {
	email := "user@example.com"
	password := "password123"

	logger, err := loggerKit.NewLogger("./go.log", loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	ormDB, err := ormKit.CreateDB(ormKit.UseSQLite("file:authflow?mode=memory&cache=shared"))
	assert.Nil(t, err)

	accountSchema, err := os.ReadFile(filepath.Join("../repository/account/mysql", "schema.sql"))
	assert.Nil(t, err)
	assert.Nil(t, ormDB.Exec(string(accountSchema)).Error)

	accountRepo := accountMySQLRepo.CreateAccountRepo(ormDB)
	tokenRepo, err := jwtRepo.CreateTokenRepo("test-secret")
	assert.Nil(t, err)
	mailRepo := &fakeMailRepo{sent: make(chan sentMail, 1)}

	accountUseCase, err := account.CreateAccountUseCase(accountRepo, mailRepo, logger)
	assert.Nil(t, err)
	authUseCase := auth.CreateAuthUseCase(accountRepo, tokenRepo)

	userInfo, err := accountUseCase.Register("Jane", "Doe", email, password)
	assert.Nil(t, err)
	assert.False(t, userInfo.IsVerified)
	assert.NotNil(t, userInfo.VerificationCode)

	select {
	case mail := <-mailRepo.sent:
		assert.Equal(t, email, mail.email)
		assert.Equal(t, *userInfo.VerificationCode, mail.verificationCode)
	case <-time.After(5 * time.Second):
		assert.Fail(t, "verification mail not dispatched")
	}

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := accountUseCase.Register("John", "Doe", email, "otherpassword")
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
		assert.Equal(t, code.DuplicateAccount, errorCode.Code)
	})

	t.Run("login before verification forbidden", func(t *testing.T) {
		_, err := authUseCase.Login(email, password)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusForbidden, code.ParseErrorCode(err).HTTPCode)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, wrongPasswordErr := authUseCase.Login(email, "wrongpassword")
		_, unknownEmailErr := authUseCase.Login("nobody@example.com", password)
		assert.NotNil(t, wrongPasswordErr)
		assert.NotNil(t, unknownEmailErr)

		wrongPasswordCode := code.ParseErrorCode(wrongPasswordErr)
		unknownEmailCode := code.ParseErrorCode(unknownEmailErr)
		assert.Equal(t, http.StatusUnauthorized, wrongPasswordCode.HTTPCode)
		assert.Equal(t, wrongPasswordCode.HTTPCode, unknownEmailCode.HTTPCode)
		assert.Equal(t, wrongPasswordCode.Code, unknownEmailCode.Code)
		assert.Equal(t, wrongPasswordCode.Message, unknownEmailCode.Message)
	})

	t.Run("bad verification code rejected", func(t *testing.T) {
		err := authUseCase.VerifyEmail("no-such-code")
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
		assert.Equal(t, code.InvalidVerificationCode, errorCode.Code)
	})

	verificationCode := *userInfo.VerificationCode
	assert.Nil(t, authUseCase.VerifyEmail(verificationCode))

	t.Run("verification code is single use", func(t *testing.T) {
		err := authUseCase.VerifyEmail(verificationCode)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, code.ParseErrorCode(err).HTTPCode)
	})

	loggedIn, err := authUseCase.Login(email, password)
	assert.Nil(t, err)
	assert.True(t, loggedIn.IsVerified)
	assert.NotEmpty(t, loggedIn.AccessToken)
	assert.NotEmpty(t, loggedIn.RefreshToken)

	t.Run("authorize resolves account", func(t *testing.T) {
		authorized, err := authUseCase.Authorize(loggedIn.AccessToken)
		assert.Nil(t, err)
		assert.Equal(t, userInfo.ID, authorized.ID)
		assert.Equal(t, email, authorized.Email)
	})

	t.Run("authorize without token unauthorized", func(t *testing.T) {
		_, err := authUseCase.Authorize("")
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusUnauthorized, errorCode.HTTPCode)
		assert.Equal(t, code.Default, errorCode.Code)
	})

	t.Run("authorize with garbage token unauthorized", func(t *testing.T) {
		_, err := authUseCase.Authorize("garbage")
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusUnauthorized, errorCode.HTTPCode)
		assert.Equal(t, code.TokenInvalid, errorCode.Code)
	})

	t.Run("refresh issues usable access token", func(t *testing.T) {
		accessToken, err := authUseCase.RefreshAccessToken(loggedIn.RefreshToken)
		assert.Nil(t, err)
		assert.NotEmpty(t, accessToken)

		authorized, err := authUseCase.Authorize(accessToken)
		assert.Nil(t, err)
		assert.Equal(t, userInfo.ID, authorized.ID)
	})

	t.Run("refresh with garbage token unauthorized", func(t *testing.T) {
		_, err := authUseCase.RefreshAccessToken("garbage")
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusUnauthorized, errorCode.HTTPCode)
		assert.Equal(t, code.TokenInvalid, errorCode.Code)
	})

	t.Run("delete account", func(t *testing.T) {
		assert.Nil(t, accountUseCase.Delete(userInfo.ID))

		_, err := accountUseCase.Get(userInfo.ID)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)

		err = accountUseCase.Delete(userInfo.ID)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)
	})
}
