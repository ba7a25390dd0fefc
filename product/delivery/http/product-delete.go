package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/shakti7/Price-Optimization-BE/domain"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
	httpTransportKit "github.com/shakti7/Price-Optimization-BE/kit/http/transport"
)

type productDeleteRequest struct {
	ProductID int64
}

type productDeleteResponse struct {
	Message string `json:"message"`
}

func MakeProductDeleteEndpoint(svc domain.ProductUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(productDeleteRequest)
		if err := svc.Delete(httpKit.GetUserID(ctx), req.ProductID); err != nil {
			return nil, err
		}
		return &productDeleteResponse{
			Message: "Product deleted",
		}, nil
	}
}

func DecodeProductDeleteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	productID, err := parseProductID(r)
	if err != nil {
		return nil, err
	}
	return productDeleteRequest{ProductID: productID}, nil
}

var EncodeProductDeleteResponse = httpTransportKit.EncodeJsonResponse
