package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"busticket/infras/jwt"
	"busticket/infras/otel"
	"busticket/internal/domains/session/model/dto"
	"busticket/shared"
	"busticket/shared/cache"
	"busticket/shared/constant"
	"busticket/shared/failure"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const cacheSessionPrefix = "session"

// Session binds signed session tokens to account emails. The token proves integrity and expiry,
// the redis record proves the session was not ended.
type Session interface {
	Start(ctx context.Context, email string) (dto.Session, error)
	Resolve(ctx context.Context, token string) (string, error)
	End(ctx context.Context, token string) error
}

type serviceImpl struct {
	jwt   jwt.JWT
	cache cache.RedisCache
	otel  otel.Otel
}

func New(jwt jwt.JWT, cache cache.RedisCache, otel otel.Otel) Session {
	return &serviceImpl{
		jwt:   jwt,
		cache: cache,
		otel:  otel,
	}
}

func sessionKey(tokenID string) string {
	return shared.BuildCacheKey(cacheSessionPrefix, tokenID)
}

func (s *serviceImpl) Start(ctx context.Context, email string) (res dto.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if email == constant.Empty {
		return res, failure.Unauthenticated
	}

	token, err := s.jwt.GenerateToken(email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return res, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err = s.cache.Save(ctx, sessionKey(token.TokenID), email, int(token.ExpiresIn)); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	return dto.Session{
		Token:     token.Value,
		Email:     email,
		ExpiresIn: token.ExpiresIn,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// Resolve returns the email bound to token, or failure.Unauthenticated for any invalid or ended session.
func (s *serviceImpl) Resolve(ctx context.Context, token string) (email string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveSession")
	defer scope.End()

	if token == constant.Empty {
		return "", failure.Unauthenticated
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")

		return "", failure.Unauthenticated
	}

	err = s.cache.Get(ctx, sessionKey(claims.TokenID), &email)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to load session")
		}

		return "", failure.Unauthenticated
	}

	if email != claims.Email {
		log.Warn().Msg("session record does not match token")

		return "", failure.Unauthenticated
	}

	return email, nil
}

// End removes the session record. Tokens that do not validate are ignored.
func (s *serviceImpl) End(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EndSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil
	}

	if err = s.cache.Delete(ctx, sessionKey(claims.TokenID)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}
