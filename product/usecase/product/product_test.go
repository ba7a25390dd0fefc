package product

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	accountMySQLRepo "github.com/shakti7/Price-Optimization-BE/auth/repository/account/mysql"
	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	ormKit "github.com/shakti7/Price-Optimization-BE/kit/orm"
	productMySQLRepo "github.com/shakti7/Price-Optimization-BE/product/repository/mysql"
)

func ptrOf[T any](v T) *T { return &v }

func TestProductUseCase(t *testing.T) {
	ormDB, err := ormKit.CreateDB(ormKit.UseSQLite("file:productusecase?mode=memory&cache=shared&_foreign_keys=on"))
	assert.Nil(t, err)

	accountSchema, err := os.ReadFile(filepath.Join("../../../auth/repository/account/mysql", "schema.sql"))
	assert.Nil(t, err)
	assert.Nil(t, ormDB.Exec(string(accountSchema)).Error)
	productSchema, err := os.ReadFile(filepath.Join("../../repository/mysql", "schema.sql"))
	assert.Nil(t, err)
	assert.Nil(t, ormDB.Exec(string(productSchema)).Error)

	accountRepo := accountMySQLRepo.CreateAccountRepo(ormDB)
	productRepo := productMySQLRepo.CreateProductRepo(ormDB)
	productUseCase := CreateProductUseCase(productRepo)

	owner, err := accountRepo.Create("Jane", "Doe", "owner@example.com", "hash", "code-owner")
	assert.Nil(t, err)
	other, err := accountRepo.Create("John", "Doe", "other@example.com", "hash", "code-other")
	assert.Nil(t, err)

	created, err := productUseCase.Create(owner.ID, &domain.Product{
		Name:           "widget",
		Description:    "a widget",
		Category:       "tools",
		CostPrice:      100,
		SellingPrice:   150,
		StockAvailable: 30,
		UnitsSold:      0,
	})
	assert.Nil(t, err)

	t.Run("derived fields computed on create", func(t *testing.T) {
		assert.Equal(t, owner.ID, created.UserID)
		assert.Equal(t, defaultCustomerRating, created.CustomerRating)
		assert.Equal(t, DemandForecast(0, 150), created.DemandForecast)
		assert.Equal(t, OptimisedPrice(100, 150, created.DemandForecast), created.OptimisedPrice)

		fetched, err := productRepo.GetByIDAndUserID(created.ID, owner.ID)
		assert.Nil(t, err)
		assert.Equal(t, created.DemandForecast, fetched.DemandForecast)
		assert.Equal(t, created.OptimisedPrice, fetched.OptimisedPrice)
	})

	t.Run("create rejects units sold above stock", func(t *testing.T) {
		_, err := productUseCase.Create(owner.ID, &domain.Product{
			Name:           "bad",
			CostPrice:      1,
			SellingPrice:   2,
			StockAvailable: 10,
			UnitsSold:      20,
		})
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
		assert.Equal(t, code.StockExceeded, errorCode.Code)
	})

	t.Run("update recomputes forecast before optimised price", func(t *testing.T) {
		updated, err := productUseCase.Update(owner.ID, created.ID, &domain.ProductUpdate{
			UnitsSold:    ptrOf(20),
			SellingPrice: ptrOf(500.0),
		})
		assert.Nil(t, err)

		wantForecast := DemandForecast(20, 500)
		assert.Equal(t, wantForecast, updated.DemandForecast)
		assert.Equal(t, OptimisedPrice(100, 500, wantForecast), updated.OptimisedPrice)
	})

	t.Run("update rejects merged state violating stock and mutates nothing", func(t *testing.T) {
		before, err := productRepo.GetByIDAndUserID(created.ID, owner.ID)
		assert.Nil(t, err)

		_, err = productUseCase.Update(owner.ID, created.ID, &domain.ProductUpdate{
			UnitsSold: ptrOf(before.StockAvailable + 20),
		})
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
		assert.Equal(t, code.StockExceeded, errorCode.Code)

		after, err := productRepo.GetByIDAndUserID(created.ID, owner.ID)
		assert.Nil(t, err)
		assert.Equal(t, *before, *after)
	})

	t.Run("cross account access is not found", func(t *testing.T) {
		_, err := productUseCase.Update(other.ID, created.ID, &domain.ProductUpdate{Name: ptrOf("stolen")})
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)

		err = productUseCase.Delete(other.ID, created.ID)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)
	})

	t.Run("dashboard pages by id", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := productUseCase.Create(owner.ID, &domain.Product{
				Name:           "bulk",
				CostPrice:      10,
				SellingPrice:   20,
				StockAvailable: 5,
			})
			assert.Nil(t, err)
		}

		firstPage, err := productUseCase.Dashboard(owner.ID, 1, 2)
		assert.Nil(t, err)
		assert.Len(t, firstPage, 2)

		secondPage, err := productUseCase.Dashboard(owner.ID, 2, 2)
		assert.Nil(t, err)
		assert.Len(t, secondPage, 2)
		assert.Less(t, firstPage[1].ID, secondPage[0].ID)

		_, err = productUseCase.Dashboard(owner.ID, 4, 2)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)
	})

	t.Run("dashboard for account without products is not found", func(t *testing.T) {
		_, err := productUseCase.Dashboard(other.ID, 1, 20)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)
	})

	t.Run("last id tracks newest product of the caller", func(t *testing.T) {
		newest, err := productUseCase.Create(owner.ID, &domain.Product{
			Name:           "newest",
			CostPrice:      10,
			SellingPrice:   20,
			StockAvailable: 5,
		})
		assert.Nil(t, err)

		lastID, err := productUseCase.LastID(owner.ID)
		assert.Nil(t, err)
		assert.Equal(t, newest.ID, lastID)

		_, err = productUseCase.LastID(other.ID)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)
	})

	t.Run("delete removes the product", func(t *testing.T) {
		victim, err := productUseCase.Create(owner.ID, &domain.Product{
			Name:           "victim",
			CostPrice:      10,
			SellingPrice:   20,
			StockAvailable: 5,
		})
		assert.Nil(t, err)

		assert.Nil(t, productUseCase.Delete(owner.ID, victim.ID))

		_, err = productRepo.GetByIDAndUserID(victim.ID, owner.ID)
		assert.True(t, errors.Is(err, ormKit.ErrRecordNotFound))
	})

	t.Run("deleting the account cascades to its products", func(t *testing.T) {
		assert.Nil(t, accountRepo.Delete(owner.ID))

		remaining, err := productRepo.GetByUserID(owner.ID, 0, 50)
		assert.Nil(t, err)
		assert.Empty(t, remaining)
	})
}
