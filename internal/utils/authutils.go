package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName carries the signed session token on every request.
const CookieName = "access_token"

const tokenTTL = 24 * time.Hour

type TokenData struct {
	UserID int32
	Exp    int64
}

// SignToken issues an HS256 token for the given user. The secret is
// loaded once at startup and passed in explicitly.
func SignToken(secret []byte, userID int32) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(int64(userID), 10),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func ValidateToken(secret []byte, tokenString string) (*TokenData, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims format")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.New("missing subject claim")
	}

	id, err := strconv.ParseInt(sub, 10, 32)
	if err != nil {
		return nil, errors.New("subject is not a user id")
	}

	return &TokenData{
		UserID: int32(id),
		Exp:    getInt64(claims, "exp"),
	}, nil
}

// ParseTokenDataCtx reads the session cookie off the request.
func ParseTokenDataCtx(secret []byte, ctx echo.Context) (*TokenData, error) {
	cookie, err := ctx.Cookie(CookieName)
	if err != nil {
		return nil, errors.New("missing session cookie")
	}
	return ValidateToken(secret, cookie.Value)
}

func getInt64(claims jwt.MapClaims, key string) int64 {
	val, ok := claims[key]
	if !ok {
		return 0
	}
	if f, ok := val.(float64); ok {
		return int64(f)
	}
	if i, ok := val.(int64); ok {
		return i
	}
	return 0
}
