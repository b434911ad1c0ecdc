package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// GenerateToken generates a JWT token for the given user id
func GenerateToken(userID string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ExtractUserID pulls the user id claim out of validated claims
func ExtractUserID(claims *jwt.MapClaims) (string, error) {
	raw, ok := (*claims)["user_id"]
	if !ok {
		return "", fmt.Errorf("missing user_id claim")
	}

	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("invalid user_id claim")
	}

	return userID, nil
}
