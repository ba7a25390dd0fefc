package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-kit/kit/endpoint"
	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
)

type productAddRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	CostPrice      float64 `json:"cost_price"`
	SellingPrice   float64 `json:"selling_price"`
	StockAvailable int     `json:"stock_available"`
	UnitsSold      int     `json:"units_sold"`
}

func MakeProductAddEndpoint(svc domain.ProductUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(productAddRequest)
		product, err := svc.Create(httpKit.GetUserID(ctx), &domain.Product{
			Name:           req.Name,
			Description:    req.Description,
			Category:       req.Category,
			CostPrice:      req.CostPrice,
			SellingPrice:   req.SellingPrice,
			StockAvailable: req.StockAvailable,
			UnitsSold:      req.UnitsSold,
		})
		if err != nil {
			return nil, err
		}
		return product, nil
	}
}

func DecodeProductAddRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req productAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}
	if req.CostPrice < 0 || req.SellingPrice < 0 || req.StockAvailable < 0 || req.UnitsSold < 0 {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}
	return req, nil
}

func EncodeProductAddResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(response)
}
