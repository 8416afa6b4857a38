// Package token issues and verifies the signed bearer tokens carried by
// authenticated requests. Tokens embed the username as subject and expire
// after a fixed interval.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry is the fixed lifetime of an issued token.
const Expiry = 30 * time.Minute

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Generate signs a token for the given username using HS256.
func Generate(username string, secret []byte) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(Expiry)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

// Subject verifies signature and expiry and returns the embedded username.
func Subject(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}

	if !tok.Valid || claims.Subject == "" {
		return "", ErrInvalid
	}

	return claims.Subject, nil
}
