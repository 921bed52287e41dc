package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	AccessSecret  = []byte(os.Getenv("JWT_ACCESS_SECRET"))
	RefreshSecret = []byte(os.Getenv("JWT_REFRESH_SECRET"))
)

const (
	AccessTTL  = time.Minute * 15
	RefreshTTL = time.Hour * 24 * 7
)

// GenerateToken выпускает JWT с user_id в claims.
func GenerateToken(userID uint, duration time.Duration, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseUserID проверяет токен и возвращает user_id из claims.
func ParseUserID(tokenString string, secret []byte) (uint, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(userIDFloat), true
}
