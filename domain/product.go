package domain

import "time"

type Product struct {
	ID             int64   `json:"product_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	CostPrice      float64 `json:"cost_price"`
	SellingPrice   float64 `json:"selling_price"`
	StockAvailable int     `json:"stock_available"`
	UnitsSold      int     `json:"units_sold"`
	CustomerRating float64 `json:"customer_rating"`

	// DemandForecast and OptimisedPrice are derived fields, always computed
	// server-side and never accepted from the client.
	DemandForecast float64 `json:"demand_forecast"`
	OptimisedPrice float64 `json:"optimised_price"`

	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductUpdate carries a partial update; nil means "leave unchanged".
type ProductUpdate struct {
	Name           *string
	Description    *string
	Category       *string
	CostPrice      *float64
	SellingPrice   *float64
	StockAvailable *int
	UnitsSold      *int
}

type ProductRepo interface {
	Create(product *Product) error
	GetByIDAndUserID(productID, userID int64) (*Product, error)
	GetByUserID(userID int64, offset, limit int) ([]*Product, error)
	Save(product *Product) error
	DeleteByIDAndUserID(productID, userID int64) error
	GetLastID(userID int64) (int64, error)
}

type ProductUseCase interface {
	Create(userID int64, product *Product) (*Product, error)
	Dashboard(userID int64, page, limit int) ([]*Product, error)
	Update(userID, productID int64, update *ProductUpdate) (*Product, error)
	Delete(userID, productID int64) error
	LastID(userID int64) (int64, error)
}
