package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/shakti7/Price-Optimization-BE/domain"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
	httpTransportKit "github.com/shakti7/Price-Optimization-BE/kit/http/transport"
)

type productLastIDResponse struct {
	LastID int64 `json:"last_id"`
}

func MakeProductLastIDEndpoint(svc domain.ProductUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		lastID, err := svc.LastID(httpKit.GetUserID(ctx))
		if err != nil {
			return nil, err
		}
		return &productLastIDResponse{
			LastID: lastID,
		}, nil
	}
}

var (
	DecodeProductLastIDRequest  = httpTransportKit.DecodeEmptyRequest
	EncodeProductLastIDResponse = httpTransportKit.EncodeJsonResponse
)
