package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-kit/kit/endpoint"
	"github.com/gorilla/mux"
	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
	httpTransportKit "github.com/shakti7/Price-Optimization-BE/kit/http/transport"
)

type productUpdateRequest struct {
	ProductID int64

	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	CostPrice      *float64 `json:"cost_price"`
	SellingPrice   *float64 `json:"selling_price"`
	StockAvailable *int     `json:"stock_available"`
	UnitsSold      *int     `json:"units_sold"`
}

func MakeProductUpdateEndpoint(svc domain.ProductUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(productUpdateRequest)
		product, err := svc.Update(httpKit.GetUserID(ctx), req.ProductID, &domain.ProductUpdate{
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

func DecodeProductUpdateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	productID, err := parseProductID(r)
	if err != nil {
		return nil, err
	}

	var req productUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	req.ProductID = productID

	if req.CostPrice != nil && *req.CostPrice < 0 ||
		req.SellingPrice != nil && *req.SellingPrice < 0 ||
		req.StockAvailable != nil && *req.StockAvailable < 0 ||
		req.UnitsSold != nil && *req.UnitsSold < 0 {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}

	return req, nil
}

var EncodeProductUpdateResponse = httpTransportKit.EncodeJsonResponse

func parseProductID(r *http.Request) (int64, error) {
	rawProductID, ok := mux.Vars(r)["productID"]
	if !ok {
		return 0, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}
	productID, err := strconv.ParseInt(rawProductID, 10, 64)
	if err != nil {
		return 0, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	return productID, nil
}
