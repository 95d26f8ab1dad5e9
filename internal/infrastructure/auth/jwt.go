package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"haitch/internal/shared/authorization"
)

type TokenType string

const (
	TokenTypeAccess TokenType = "access"
)

type Claims struct {
	UserID    uint                   `json:"user_id"`
	Role      authorization.UserRole `json:"role"`
	TokenType TokenType              `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

func (s *JWTService) Generate(userID uint, role authorization.UserRole) (string, int64, error) {
	now := time.Now().UTC()

	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, int64(s.accessExpMinutes * 60), nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
