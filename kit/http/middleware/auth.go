package middleware

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/pkg/errors"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
)

func CreateAuthMiddleware(authFunc func(ctx context.Context, token string) (userID int64, err error)) endpoint.Middleware {
	return func(e endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			token := httpKit.GetToken(ctx)
			userID, err := authFunc(ctx, token)
			if err != nil {
				return nil, errors.Wrap(err, "auth failed")
			}
			ctx = httpKit.AddUserID(ctx, userID)
			return e(ctx, request)
		}
	}
}
