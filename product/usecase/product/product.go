package product

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	ormKit "github.com/shakti7/Price-Optimization-BE/kit/orm"
)

const defaultCustomerRating = 4.5

type productUseCase struct {
	productRepo domain.ProductRepo
}

func CreateProductUseCase(productRepo domain.ProductRepo) domain.ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
	}
}

func (p *productUseCase) Create(userID int64, product *domain.Product) (*domain.Product, error) {
	if product.UnitsSold > product.StockAvailable {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.StockExceeded)
	}

	product.UserID = userID
	product.CustomerRating = defaultCustomerRating
	product.DemandForecast = DemandForecast(product.UnitsSold, product.SellingPrice)
	product.OptimisedPrice = OptimisedPrice(product.CostPrice, product.SellingPrice, product.DemandForecast)

	if err := p.productRepo.Create(product); err != nil {
		return nil, errors.Wrap(err, "create product failed")
	}

	return product, nil
}

func (p *productUseCase) Dashboard(userID int64, page, limit int) ([]*domain.Product, error) {
	offset := (page - 1) * limit
	products, err := p.productRepo.GetByUserID(userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "get products failed")
	}
	if len(products) == 0 {
		return nil, code.CreateErrorCode(http.StatusNotFound)
	}
	return products, nil
}

func (p *productUseCase) Update(userID, productID int64, update *domain.ProductUpdate) (*domain.Product, error) {
	product, err := p.productRepo.GetByIDAndUserID(productID, userID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "get product failed")
	}

	merged := *product
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Description != nil {
		merged.Description = *update.Description
	}
	if update.Category != nil {
		merged.Category = *update.Category
	}
	if update.CostPrice != nil {
		merged.CostPrice = *update.CostPrice
	}
	if update.SellingPrice != nil {
		merged.SellingPrice = *update.SellingPrice
	}
	if update.StockAvailable != nil {
		merged.StockAvailable = *update.StockAvailable
	}
	if update.UnitsSold != nil {
		merged.UnitsSold = *update.UnitsSold
	}

	// validate the merged state before anything is written
	if merged.UnitsSold > merged.StockAvailable {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.StockExceeded)
	}

	// forecast first, so a recomputed optimised price sees the fresh value
	if update.UnitsSold != nil || update.SellingPrice != nil {
		merged.DemandForecast = DemandForecast(merged.UnitsSold, merged.SellingPrice)
	}
	if update.CostPrice != nil || update.SellingPrice != nil {
		merged.OptimisedPrice = OptimisedPrice(merged.CostPrice, merged.SellingPrice, merged.DemandForecast)
	}

	if err := p.productRepo.Save(&merged); err != nil {
		return nil, errors.Wrap(err, "save product failed")
	}

	return &merged, nil
}

func (p *productUseCase) Delete(userID, productID int64) error {
	if err := p.productRepo.DeleteByIDAndUserID(productID, userID); errors.Is(err, domain.ErrNoData) {
		return code.CreateErrorCode(http.StatusNotFound)
	} else if err != nil {
		return errors.Wrap(err, "delete product failed")
	}
	return nil
}

func (p *productUseCase) LastID(userID int64) (int64, error) {
	lastID, err := p.productRepo.GetLastID(userID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return 0, code.CreateErrorCode(http.StatusNotFound)
	} else if err != nil {
		return 0, errors.Wrap(err, "get last product id failed")
	}
	return lastID, nil
}
