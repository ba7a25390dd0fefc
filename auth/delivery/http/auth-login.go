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

const (
	RefreshTokenCookieName = "refresh_token"

	accessTokenCookieMaxAge  = 3600
	refreshTokenCookieMaxAge = 7 * 24 * 3600
)

type authLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authLoginUser struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type authLoginResponse struct {
	Message string        `json:"message"`
	User    authLoginUser `json:"user"`

	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

func MakeAuthLoginEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(authLoginRequest)
		account, err := svc.Login(req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return &authLoginResponse{
			Message: "Login successful",
			User: authLoginUser{
				Email:     account.Email,
				FirstName: account.FirstName,
				LastName:  account.LastName,
			},
			AccessToken:  account.AccessToken,
			RefreshToken: account.RefreshToken,
		}, nil
	}
}

func DecodeAuthLoginRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req authLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	if req.Email == "" || req.Password == "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}
	return req, nil
}

func EncodeAuthLoginResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	res := response.(*authLoginResponse)
	http.SetCookie(w, makeTokenCookie(httpKit.AccessTokenCookieName, res.AccessToken, accessTokenCookieMaxAge))
	http.SetCookie(w, makeTokenCookie(RefreshTokenCookieName, res.RefreshToken, refreshTokenCookieMaxAge))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

func makeTokenCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
