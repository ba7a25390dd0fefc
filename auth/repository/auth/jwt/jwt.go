package jwt

import (
	"fmt"
	"time"

	goJWT "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/shakti7/Price-Optimization-BE/domain"
)

type tokenRepo struct {
	secret []byte
}

func CreateTokenRepo(secret string) (domain.TokenRepo, error) {
	if secret == "" {
		return nil, errors.New("empty jwt secret")
	}
	return &tokenRepo{
		secret: []byte(secret),
	}, nil
}

func (t *tokenRepo) GenerateToken(subject string, iat, exp time.Time) (string, error) {
	token := goJWT.NewWithClaims(goJWT.SigningMethodHS256, goJWT.MapClaims{
		"sub": subject,
		"iat": iat.Unix(),
		"exp": exp.Unix(),
	})
	signedToken, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "signed token failed")
	}
	return signedToken, nil
}

// VerifyToken reports every failure mode as invalid data. Callers cannot
// distinguish expired from tampered tokens, which keeps the API response
// identical either way.
func (t *tokenRepo) VerifyToken(tokenString string) (string, error) {
	token, err := goJWT.Parse(tokenString, func(token *goJWT.Token) (interface{}, error) {
		if _, ok := token.Method.(*goJWT.SigningMethodHMAC); !ok {
			return nil, errors.New(fmt.Sprintf("unexpected signing %s", token.Header["alg"]))
		}
		return t.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(domain.ErrInvalidData, fmt.Sprintf("parse token failed: %+v", err))
	}
	if !token.Valid {
		return "", errors.Wrap(domain.ErrInvalidData, "token invalid")
	}

	mapClaims, ok := token.Claims.(goJWT.MapClaims)
	if !ok {
		return "", errors.Wrap(domain.ErrInvalidData, "get claims failed")
	}
	subject, ok := mapClaims["sub"].(string)
	if !ok {
		return "", errors.Wrap(domain.ErrInvalidData, "get sub claim failed")
	}

	return subject, nil
}
