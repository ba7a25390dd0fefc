package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
)

const refreshedAccessTokenCookieMaxAge = 1800

type refreshAccessTokenRequest struct {
	RefreshToken string
}

type refreshAccessTokenResponse struct {
	Message string `json:"message"`

	AccessToken string `json:"-"`
}

func MakeRefreshAccessTokenEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(refreshAccessTokenRequest)
		accessToken, err := svc.RefreshAccessToken(req.RefreshToken)
		if err != nil {
			return nil, err
		}
		return &refreshAccessTokenResponse{
			Message:     "Access token refreshed",
			AccessToken: accessToken,
		}, nil
	}
}

func DecodeRefreshAccessTokenRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	cookie, err := r.Cookie(RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		return nil, code.CreateErrorCode(http.StatusUnauthorized)
	}
	return refreshAccessTokenRequest{RefreshToken: cookie.Value}, nil
}

func EncodeRefreshAccessTokenResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	res := response.(*refreshAccessTokenResponse)
	http.SetCookie(w, makeTokenCookie(httpKit.AccessTokenCookieName, res.AccessToken, refreshedAccessTokenCookieMaxAge))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}
