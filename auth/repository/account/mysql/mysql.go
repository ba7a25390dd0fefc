package mysql

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shakti7/Price-Optimization-BE/domain"
	ormKit "github.com/shakti7/Price-Optimization-BE/kit/orm"
	utilKit "github.com/shakti7/Price-Optimization-BE/kit/util"
)

type accountEntity struct {
	domain.Account
}

func (accountEntity) TableName() string {
	return "accounts"
}

type accountRepo struct {
	db *ormKit.DB
}

func CreateAccountRepo(db *ormKit.DB) domain.AccountRepo {
	return &accountRepo{
		db: db,
	}
}

func (a *accountRepo) Create(firstName, lastName, email, passwordHash, verificationCode string) (*domain.Account, error) {
	uniqueIDGenerate, err := utilKit.GetUniqueIDGenerate()
	if err != nil {
		return nil, errors.Wrap(err, "generate unique id failed")
	}

	now := time.Now()
	account := accountEntity{
		Account: domain.Account{
			ID:               uniqueIDGenerate.Generate().GetInt64(),
			FirstName:        firstName,
			LastName:         lastName,
			Email:            email,
			Password:         passwordHash,
			IsVerified:       false,
			VerificationCode: &verificationCode,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}

	if err = a.db.Create(&account).Error; err != nil {
		return nil, errors.Wrap(ormKit.ConvertDBLevelErr(err), "create account failed")
	}

	return &account.Account, nil
}

func (a *accountRepo) Get(userID int64) (*domain.Account, error) {
	var account accountEntity
	if err := a.db.First(&account, userID); err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account.Account, nil
}

func (a *accountRepo) GetByEmail(email string) (*domain.Account, error) {
	var account accountEntity
	if err := a.db.First(&account, "email = ?", email); err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account.Account, nil
}

func (a *accountRepo) GetByVerificationCode(verificationCode string) (*domain.Account, error) {
	var account accountEntity
	if err := a.db.First(&account, "verification_code = ?", verificationCode); err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account.Account, nil
}

// SetVerified flips the account to verified only if the code still matches,
// so two concurrent verify requests cannot both succeed.
func (a *accountRepo) SetVerified(userID int64, verificationCode string) (bool, error) {
	result := a.db.
		Model(&accountEntity{}).
		Where("id = ? AND verification_code = ?", userID, verificationCode).
		Updates(map[string]interface{}{
			"is_verified":       true,
			"verification_code": nil,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "set verified failed")
	}
	return result.RowsAffected == 1, nil
}

func (a *accountRepo) Delete(userID int64) error {
	result := a.db.Delete(&accountEntity{}, userID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete account failed")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(domain.ErrNoData, "account not found")
	}
	return nil
}
