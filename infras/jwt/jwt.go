package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"busticket/config"
	"busticket/shared/constant"
	"busticket/shared/timezone"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrEmptySecret  = errors.New("jwt secret is not configured")
)

// Claims identifies the account a session token was issued to.
type Claims struct {
	Email   string `json:"email"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// Token is a signed session token.
type Token struct {
	Value     string
	TokenID   string
	ExpiresIn int64
	ExpiresAt time.Time
}

// JWT handles JWT operations
type JWT interface {
	GenerateToken(email string) (*Token, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	config *config.Config
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// GenerateToken signs a HS256 token for email. TokenID doubles as the session key.
func (s *Service) GenerateToken(email string) (*Token, error) {
	if s.config.JWT.Secret == "" {
		return nil, ErrEmptySecret
	}

	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(time.Duration(s.config.JWT.ExpireMin) * time.Minute)
	tokenID := uuid.New().String()

	claims := Claims{
		Email:   email,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   email,
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		Value:     signedToken,
		TokenID:   tokenID,
		ExpiresIn: int64(s.config.JWT.ExpireMin * constant.MinutesToSeconds),
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if s.config.JWT.Secret == "" {
		return nil, ErrEmptySecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.JWT.Secret), nil
	}, jwt.WithIssuer(s.config.App.Name))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Email == "" || claims.TokenID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}
