package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

var (
	jwtSecret  []byte
	expiration = 15 * time.Minute
)

// Configure sets the signing secret and token lifetime from config.
// Must be called before any token is generated or parsed.
func Configure(secret string, exp time.Duration) {
	jwtSecret = []byte(secret)
	if exp > 0 {
		expiration = exp
	}
}

func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims parses the Authorization header and returns the token
// with its claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil, nil, errors.New("missing bearer token")
	}
	tokenStr := strings.TrimPrefix(authorization, "Bearer ")

	token, err := ParseToken(tokenStr)
	if err != nil || !token.Valid {
		return nil, nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, errors.New("unexpected claims type")
	}
	return token, claims, nil
}
