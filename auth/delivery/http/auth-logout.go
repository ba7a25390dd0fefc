package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
	httpTransportKit "github.com/shakti7/Price-Optimization-BE/kit/http/transport"
)

type authLogoutResponse struct {
	Message string `json:"message"`
}

// Tokens are self-contained, so logout only clears the cookie. An already
// issued token stays usable until it expires.
func MakeAuthLogoutEndpoint() endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		return &authLogoutResponse{
			Message: "Successfully logged out",
		}, nil
	}
}

var DecodeAuthLogoutRequest = httpTransportKit.DecodeEmptyRequest

func EncodeAuthLogoutResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	http.SetCookie(w, makeTokenCookie(httpKit.AccessTokenCookieName, "", -1))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}
