package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidToken = errors.New("invalid session token")

type AuthService interface {
	GeneratePlayerToken(playerID string) (string, error)
	ParsePlayerID(tokenString string) (string, error)
}

type authServiceImpl struct {
	secretKey string
}

func NewAuthService(secretKey string) AuthService {
	return &authServiceImpl{
		secretKey: secretKey,
	}
}

// GeneratePlayerToken - issues a signed session token that carries the player ID.
func (that *authServiceImpl) GeneratePlayerToken(playerID string) (string, error) {
	claims := jwt.MapClaims{}
	claims["player_id"] = playerID
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(that.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParsePlayerID - validates a session token and returns the player ID it carries.
func (that *authServiceImpl) ParsePlayerID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(that.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	playerID, ok := claims["player_id"].(string)
	if !ok || playerID == "" {
		return "", ErrInvalidToken
	}

	return playerID, nil
}
