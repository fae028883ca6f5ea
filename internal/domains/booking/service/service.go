package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"busticket/config"
	"busticket/infras/otel"
	"busticket/internal/domains/booking/model"
	"busticket/internal/domains/booking/model/dto"
	"busticket/internal/domains/booking/repository"
	"busticket/shared"
	"busticket/shared/constant"
	gDto "busticket/shared/dto"
	"busticket/shared/failure"
	"busticket/shared/metrics"
	"busticket/shared/ticketcode"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	operationCreated = "created"
	operationUpdated = "updated"
	operationDeleted = "deleted"
)

// Booking manages the bookings of one owner at a time. Every call takes the owner explicitly
// and an empty owner fails with failure.Unauthenticated.
type Booking interface {
	Create(ctx context.Context, owner string, req dto.BookingRequest) (dto.BookingResponse, error)
	ListByOwner(ctx context.Context, owner string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetByOwner(ctx context.Context, id int64, owner string) (dto.BookingResponse, error)
	Update(ctx context.Context, id int64, owner string, req dto.BookingRequest) error
	Delete(ctx context.Context, id int64, owner string) error
	CountByOwner(ctx context.Context, owner string) (int, error)
}

type serviceImpl struct {
	repo        repository.Booking
	otel        otel.Otel
	price       float64
	phonePolicy model.PhonePolicy
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel) Booking {
	policy, err := model.ParsePhonePolicy(cfg.App.Booking.PhonePolicy)
	if err != nil {
		log.Warn().Err(err).Str("fallback", string(policy)).Msg("invalid phone policy, using fallback")
	}

	return &serviceImpl{
		repo:        repo,
		otel:        otel,
		price:       cfg.App.Booking.TicketPrice,
		phonePolicy: policy,
	}
}

func (s *serviceImpl) Create(ctx context.Context, owner string, req dto.BookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if owner == constant.Empty {
		return res, failure.Unauthenticated
	}

	if err = s.phonePolicy.Validate(req.Phone); err != nil {
		return res, err //nolint:wrapcheck
	}

	booking := req.ToModel(owner, ticketcode.New(), s.price)

	booking.ID, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.SetAttribute("booking.id", booking.ID)
	metrics.Bookings.WithLabelValues(operationCreated).Inc()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListByOwner(ctx context.Context, owner string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if owner == constant.Empty {
		return res, failure.Unauthenticated
	}

	params.SortBy = model.SortByTravelDate
	params.SortDir = gDto.SortDirAsc

	filter := dto.OwnerFilter(owner)

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	total := len(models)

	if params.Limit > 0 {
		total, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", err)
		}
	}

	res.FromModels(models, total, params)

	return res, nil
}

func (s *serviceImpl) GetByOwner(ctx context.Context, id int64, owner string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if owner == constant.Empty {
		return res, failure.Unauthenticated
	}

	booking, err := s.repo.Get(ctx, dto.OwnedFilter(id, owner))
	if err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFoundOrForbidden
	}

	res.FromModel(booking)

	return res, nil
}

// Update overwrites the route, date and phone of an owned booking. Ticket code and price never change.
func (s *serviceImpl) Update(ctx context.Context, id int64, owner string, req dto.BookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if owner == constant.Empty {
		return failure.Unauthenticated
	}

	affected, err := s.repo.Update(ctx, shared.TransformFields(req, owner), dto.OwnedFilter(id, owner))
	if err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if affected == 0 {
		return failure.NotFoundOrForbidden
	}

	metrics.Bookings.WithLabelValues(operationUpdated).Inc()

	return nil
}

// Delete removes an owned booking. A booking that does not exist or belongs to someone else is left alone.
func (s *serviceImpl) Delete(ctx context.Context, id int64, owner string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if owner == constant.Empty {
		return failure.Unauthenticated
	}

	affected, err := s.repo.Delete(ctx, dto.OwnedFilter(id, owner))
	if err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if affected > 0 {
		metrics.Bookings.WithLabelValues(operationDeleted).Inc()
	}

	return nil
}

func (s *serviceImpl) CountByOwner(ctx context.Context, owner string) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if owner == constant.Empty {
		return 0, failure.Unauthenticated
	}

	count, err = s.repo.Count(ctx, dto.OwnerFilter(owner))
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}
