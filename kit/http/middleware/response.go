package middleware

import (
	"context"
	"net/http"

	"github.com/shakti7/Price-Optimization-BE/kit/code"
)

// EncodeResponseSetSuccessHTTPCode writes a non-200 success status before the
// wrapped encoder produces the body, so encoders only deal with payloads.
func EncodeResponseSetSuccessHTTPCode(next func(ctx context.Context, w http.ResponseWriter, response interface{}) error) func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		successCode := code.ParseResponseSuccessCode(response)
		if successCode.HTTPCode != http.StatusOK {
			w.WriteHeader(successCode.HTTPCode)
		}
		return next(ctx, w, response)
	}
}
