package code

import (
	"encoding/json"
	"fmt"
	httpPKG "net/http"

	"github.com/pkg/errors"
)

type errorCode struct {
	HTTPCode    int    `json:"http_code"`
	Code        int    `json:"code"`
	Message     string `json:"message"`
	OriginError error  `json:"-"`
	CallStack   string `json:"-"`
}

func (e errorCode) Error() string {
	errorStr, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}
	return string(errorStr)
}

func (e *errorCode) AddErrorMetaData(err error) *errorCode {
	e.OriginError = err
	e.CallStack = fmt.Sprintf("%+v", err)
	return e
}

func (e *errorCode) AddCode(code int, args ...any) *errorCode {
	if httpErrorCodes, ok := errorCodes[e.HTTPCode]; ok {
		if message, ok := httpErrorCodes[code]; ok {
			e.Code = code
			e.Message = fmt.Sprintf(message, args...)
		}
	}
	return e
}

const (
	Default                 = 0
	RateLimit               = 1
	InvalidBody             = 2
	Expired                 = 3
	PasswordInvalid         = 4
	NotVerified             = 5
	DuplicateAccount        = 6
	InvalidVerificationCode = 7
	TokenInvalid            = 8
	StockExceeded           = 9
)

var errorCodes = map[int]map[int]string{
	httpPKG.StatusTooManyRequests: {
		Default:   "too many requests",
		RateLimit: "rate limit error. expiry: %d",
	},
	httpPKG.StatusNotFound: {
		Default: "not found",
	},
	httpPKG.StatusInternalServerError: {
		Default: "internal error",
	},
	httpPKG.StatusBadRequest: {
		Default:                 "bad request",
		InvalidBody:             "invalid body",
		DuplicateAccount:        "email already registered",
		InvalidVerificationCode: "invalid or expired verification code",
		StockExceeded:           "units sold cannot be greater than stock available",
	},
	httpPKG.StatusUnauthorized: {
		Default:         "unauthorized",
		Expired:         "expired",
		PasswordInvalid: "invalid email or password",
		TokenInvalid:    "invalid authentication token",
	},
	httpPKG.StatusForbidden: {
		Default:     "forbidden",
		NotVerified: "please verify your email before logging in",
	},
}

func CreateErrorCode(code int) *errorCode {
	resCode := httpPKG.StatusInternalServerError
	resMessage := errorCodes[httpPKG.StatusInternalServerError][Default]
	if codes, ok := errorCodes[code]; ok {
		resCode = code

		if message, ok := codes[Default]; ok {
			resMessage = message
		}
	}

	return &errorCode{
		HTTPCode: resCode,
		Code:     Default,
		Message:  resMessage,
	}
}

// ParseErrorCode maps any error to a stable error code. Errors that are not
// already codes become opaque internal errors; detail stays in CallStack for
// the logs and is never echoed to the caller.
func ParseErrorCode(err error) *errorCode {
	causeErr := errors.Cause(err)
	switch errorCode := causeErr.(type) {
	case *errorCode:
		return errorCode
	}

	return CreateErrorCode(httpPKG.StatusInternalServerError).AddErrorMetaData(err)
}
