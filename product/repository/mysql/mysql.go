package mysql

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shakti7/Price-Optimization-BE/domain"
	ormKit "github.com/shakti7/Price-Optimization-BE/kit/orm"
	utilKit "github.com/shakti7/Price-Optimization-BE/kit/util"
)

type productEntity struct {
	domain.Product
}

func (productEntity) TableName() string {
	return "products"
}

type productRepo struct {
	db *ormKit.DB
}

func CreateProductRepo(db *ormKit.DB) domain.ProductRepo {
	return &productRepo{
		db: db,
	}
}

func (p *productRepo) Create(product *domain.Product) error {
	uniqueIDGenerate, err := utilKit.GetUniqueIDGenerate()
	if err != nil {
		return errors.Wrap(err, "generate unique id failed")
	}

	now := time.Now()
	product.ID = uniqueIDGenerate.Generate().GetInt64()
	product.CreatedAt = now
	product.UpdatedAt = now

	entity := productEntity{Product: *product}
	if err := p.db.Create(&entity).Error; err != nil {
		return errors.Wrap(err, "create product failed")
	}

	return nil
}

func (p *productRepo) GetByIDAndUserID(productID, userID int64) (*domain.Product, error) {
	var product productEntity
	if err := p.db.First(&product, "id = ? AND user_id = ?", productID, userID); err != nil {
		return nil, errors.Wrap(err, "get product failed")
	}
	return &product.Product, nil
}

func (p *productRepo) GetByUserID(userID int64, offset, limit int) ([]*domain.Product, error) {
	var entities []*productEntity
	if err := p.db.
		Model(&productEntity{}).
		Where("user_id = ?", userID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&entities).Error; err != nil {
		return nil, errors.Wrap(err, "get products failed")
	}

	products := make([]*domain.Product, len(entities))
	for i, entity := range entities {
		products[i] = &entity.Product
	}
	return products, nil
}

func (p *productRepo) Save(product *domain.Product) error {
	product.UpdatedAt = time.Now()

	entity := productEntity{Product: *product}
	if err := p.db.Save(&entity).Error; err != nil {
		return errors.Wrap(err, "save product failed")
	}

	return nil
}

func (p *productRepo) DeleteByIDAndUserID(productID, userID int64) error {
	result := p.db.Delete(&productEntity{}, "id = ? AND user_id = ?", productID, userID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete product failed")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(domain.ErrNoData, "product not found")
	}
	return nil
}

func (p *productRepo) GetLastID(userID int64) (int64, error) {
	var product productEntity
	if err := p.db.Last(&product, "user_id = ?", userID); err != nil {
		return 0, errors.Wrap(err, "get last product failed")
	}
	return product.ID, nil
}
