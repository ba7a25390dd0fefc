package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-kit/kit/endpoint"
	"github.com/shakti7/Price-Optimization-BE/domain"
	"github.com/shakti7/Price-Optimization-BE/kit/code"
)

const minPasswordLength = 8

type accountRegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type accountSummary struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

type accountRegisterResponse struct {
	Message string         `json:"message"`
	User    accountSummary `json:"user"`
}

func MakeAccountRegisterEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountRegisterRequest)
		account, err := svc.Register(req.FirstName, req.LastName, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return &accountRegisterResponse{
			Message: "User registered successfully. Please verify your email.",
			User:    makeAccountSummary(account),
		}, nil
	}
}

func DecodeAccountRegisterRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req accountRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}
	if len(req.Password) < minPasswordLength {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}
	return req, nil
}

func EncodeAccountRegisterResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(response)
}

func makeAccountSummary(account *domain.Account) accountSummary {
	return accountSummary{
		ID:         account.ID,
		FirstName:  account.FirstName,
		LastName:   account.LastName,
		Email:      account.Email,
		IsVerified: account.IsVerified,
	}
}
