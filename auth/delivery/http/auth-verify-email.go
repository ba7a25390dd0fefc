package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/gorilla/mux"
	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
	httpTransportKit "github.com/shakti7/Price-Optimization-BE/kit/http/transport"
)

type authVerifyEmailRequest struct {
	VerificationCode string
}

type authVerifyEmailResponse struct {
	Message string `json:"message"`
}

func MakeAuthVerifyEmailEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(authVerifyEmailRequest)
		if err := svc.VerifyEmail(req.VerificationCode); err != nil {
			return nil, err
		}
		return &authVerifyEmailResponse{
			Message: "Email verified successfully. You can now log in.",
		}, nil
	}
}

func DecodeAuthVerifyEmailRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	verificationCode, ok := mux.Vars(r)["code"]
	if !ok || verificationCode == "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidVerificationCode)
	}
	return authVerifyEmailRequest{VerificationCode: verificationCode}, nil
}

var EncodeAuthVerifyEmailResponse = httpTransportKit.EncodeJsonResponse
