package jwt

import (
	"time"

	"polls-api/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

func NewToken(admin models.Admin, duration time.Duration, secret string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = admin.ID
	claims["name"] = admin.Name
	claims["exp"] = time.Now().Add(duration).Unix()

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
