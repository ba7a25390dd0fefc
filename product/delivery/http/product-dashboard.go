package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-kit/kit/endpoint"
	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
	httpTransportKit "github.com/shakti7/Price-Optimization-BE/kit/http/transport"
)

const (
	defaultDashboardPage  = 1
	defaultDashboardLimit = 20
	maxDashboardLimit     = 50
)

type productDashboardRequest struct {
	Page  int
	Limit int
}

func MakeProductDashboardEndpoint(svc domain.ProductUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(productDashboardRequest)
		products, err := svc.Dashboard(httpKit.GetUserID(ctx), req.Page, req.Limit)
		if err != nil {
			return nil, err
		}
		return products, nil
	}
}

func DecodeProductDashboardRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	req := productDashboardRequest{
		Page:  defaultDashboardPage,
		Limit: defaultDashboardLimit,
	}

	if rawPage := r.URL.Query().Get("page"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 1 {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
		}
		req.Page = page
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 1 || limit > maxDashboardLimit {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
		}
		req.Limit = limit
	}

	return req, nil
}

var EncodeProductDashboardResponse = httpTransportKit.EncodeJsonResponse
