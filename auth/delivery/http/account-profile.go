package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/shakti7/Price-Optimization-BE/domain"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
	httpTransportKit "github.com/shakti7/Price-Optimization-BE/kit/http/transport"
)

type accountProfileDeleteResponse struct {
	Message string `json:"message"`
}

func MakeAccountProfileEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		account, err := svc.Get(httpKit.GetUserID(ctx))
		if err != nil {
			return nil, err
		}
		summary := makeAccountSummary(account)
		return &summary, nil
	}
}

// MakeAccountProfileDeleteEndpoint removes the account and, through the
// database cascade, every product it owns.
func MakeAccountProfileDeleteEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		if err := svc.Delete(httpKit.GetUserID(ctx)); err != nil {
			return nil, err
		}
		return &accountProfileDeleteResponse{
			Message: "Account deleted",
		}, nil
	}
}

var (
	DecodeAccountProfileRequest  = httpTransportKit.DecodeEmptyRequest
	EncodeAccountProfileResponse = httpTransportKit.EncodeJsonResponse
)
