package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Account=MockAccountService

import (
	"busticket/infras/otel"
	"busticket/internal/domains/account/model"
	"busticket/internal/domains/account/model/dto"
	"busticket/internal/domains/account/repository"
	"busticket/shared"
	"busticket/shared/constant"
	"busticket/shared/failure"
	"busticket/shared/metrics"
	"busticket/shared/password"
	"busticket/shared/validator"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Account interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Authenticate(ctx context.Context, req dto.LoginRequest) (string, error)
}

type serviceImpl struct {
	repo repository.Account
	otel otel.Otel
}

func New(repo repository.Account, otel otel.Otel) Account {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Register creates an account. An email that is already taken yields failure.DuplicateEmail.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		metrics.Registrations.WithLabelValues(metrics.Result(err)).Inc()
	}()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, dto.EmailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if account exists")

		return fmt.Errorf("failed to check if account exists: %w", err)
	}

	if exists {
		return failure.DuplicateEmail
	}

	hashedPassword, err := password.Hash(req.Password)
	if errors.Is(err, password.ErrPasswordTooLong) {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.repo.Insert(ctx, req.ToModel(hashedPassword))
	if shared.IsUniqueViolation(err) {
		return failure.DuplicateEmail
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create account")

		return fmt.Errorf("failed to create account: %w", err)
	}

	log.Info().Int64("account_id", id).Msg("account registered")

	return nil
}

// Authenticate checks the credentials and returns the email to bind into the session.
func (s *serviceImpl) Authenticate(ctx context.Context, req dto.LoginRequest) (email string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		metrics.Logins.WithLabelValues(metrics.Result(err)).Inc()
	}()

	if req.Email == "" || req.Password == "" {
		return "", failure.InvalidCredentials
	}

	account, err := s.repo.Get(ctx, dto.EmailFilter(req.Email), model.FieldID, model.FieldEmail, model.FieldPasswordHash)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return "", fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == 0 {
		log.Warn().Msg("login attempt with unknown email")

		return "", failure.InvalidCredentials
	}

	if err = password.Verify(req.Password, account.PasswordHash); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Int64("account_id", account.ID).Msg("failed to verify password")
		}

		return "", failure.InvalidCredentials
	}

	return account.Email, nil
}
