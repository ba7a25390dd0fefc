package account

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	loggerKit "github.com/shakti7/Price-Optimization-BE/kit/logger"
	ormKit "github.com/shakti7/Price-Optimization-BE/kit/orm"
	utilKit "github.com/shakti7/Price-Optimization-BE/kit/util"
)

type accountUseCase struct {
	accountRepo          domain.AccountRepo
	verificationMailRepo domain.VerificationMailRepo
	logger               *loggerKit.Logger
}

func CreateAccountUseCase(accountRepo domain.AccountRepo, verificationMailRepo domain.VerificationMailRepo, logger *loggerKit.Logger) (domain.AccountUseCase, error) {
	if logger == nil {
		return nil, errors.New("create account use case failed")
	}
	return &accountUseCase{
		accountRepo:          accountRepo,
		verificationMailRepo: verificationMailRepo,
		logger:               logger,
	}, nil
}

func (a *accountUseCase) Register(firstName, lastName, email, password string) (*domain.Account, error) {
	if _, err := a.accountRepo.GetByEmail(email); err == nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.DuplicateAccount)
	} else if !errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "get account failed")
	}

	passwordHash, err := utilKit.GetBcrypt(password)
	if err != nil {
		return nil, errors.Wrap(err, "get bcrypt failed")
	}

	verificationCode := uuid.NewString()

	account, err := a.accountRepo.Create(firstName, lastName, email, passwordHash, verificationCode)
	if errors.Is(err, ormKit.ErrDuplicatedKey) {
		// lost the race with a concurrent signup for the same email
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.DuplicateAccount)
	} else if err != nil {
		return nil, errors.Wrap(err, "create account failed")
	}

	go func() {
		if err := a.verificationMailRepo.SendVerificationMail(email, verificationCode); err != nil {
			a.logger.With(
				loggerKit.String("email", email),
				loggerKit.String("error", err.Error()),
			).Error("send verification mail failed")
		}
	}()

	return account, nil
}

func (a *accountUseCase) Get(userID int64) (*domain.Account, error) {
	account, err := a.accountRepo.Get(userID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return account, nil
}

func (a *accountUseCase) Delete(userID int64) error {
	if err := a.accountRepo.Delete(userID); errors.Is(err, domain.ErrNoData) {
		return code.CreateErrorCode(http.StatusNotFound)
	} else if err != nil {
		return errors.Wrap(err, "delete account failed")
	}
	return nil
}
