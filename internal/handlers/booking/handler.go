package booking

import (
	"busticket/infras/otel"
	"busticket/internal/domains/booking/model/dto"
	"busticket/internal/domains/booking/service"
	"busticket/internal/domains/booking/ticket"
	"busticket/shared/constant"
	gDto "busticket/shared/dto"
	"busticket/shared/failure"
	"busticket/transport/http/response"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathBooking     = "/booking"
	pathDelete      = "/delete_booking/{id:[0-9]+}"
	pathEdit        = "/edit_booking/{id:[0-9]+}"
	pathTicket      = "/ticket/{id:[0-9]+}"
	messageBooked   = "Ticket booked successfully! Code: %s | Price: ₹%s"
	titleBookTicket = "Book Ticket"
)

// DashboardData feeds the dashboard page.
type DashboardData struct {
	TotalBookings int
}

// EditData feeds the edit form.
type EditData struct {
	ID      int64
	Booking dto.BookingRequest
}

type Handler struct {
	service service.Booking
	ticket  ticket.Renderer
	otel    otel.Otel
}

func New(service service.Booking, ticket ticket.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		ticket:  ticket,
		otel:    otel,
	}
}

// Router registers the booking pages. Every route expects the session middleware in front of it.
func (handler *Handler) Router(r chi.Router) {
	r.Get(constant.PathDashboard, handler.Dashboard)
	r.Get(pathBooking, handler.BookingPage)
	r.Post(pathBooking, handler.CreateBooking)
	r.Get(constant.PathViewBookings, handler.ViewBookings)
	r.Get(pathDelete, handler.DeleteBooking)
	r.Get(pathEdit, handler.EditBookingPage)
	r.Post(pathEdit, handler.UpdateBooking)
	r.Get(pathTicket, handler.DownloadTicket)
}

func ownerFrom(ctx context.Context) string {
	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	return owner
}

func bookingID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.NotFoundOrForbidden
	}

	return id, nil
}

// fail renders err, sending callers without a session back to the login page.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, failure.Unauthenticated) {
		http.Redirect(w, r, constant.PathLogin, http.StatusFound)

		return
	}

	response.WithError(w, err)
}

// Dashboard handles GET /dashboard.
func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	owner := ownerFrom(ctx)

	count, err := handler.service.CountByOwner(ctx, owner)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count bookings")

		fail(w, r, err)

		return
	}

	response.WithPage(w, http.StatusOK, response.PageDashboard, response.View{
		Title: "Dashboard",
		User:  owner,
		Data:  DashboardData{TotalBookings: count},
	})
}

// BookingPage handles GET /booking.
func (handler *Handler) BookingPage(w http.ResponseWriter, r *http.Request) {
	response.WithPage(w, http.StatusOK, response.PageBooking, response.View{
		Title: titleBookTicket,
		User:  ownerFrom(r.Context()),
	})
}

// CreateBooking handles POST /booking and shows the ticket code and price on success.
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	owner := ownerFrom(ctx)

	req := dto.BookingRequest{}
	req.FromRequest(r)

	booking, err := handler.service.Create(ctx, owner, req)
	if err != nil {
		scope.TraceError(err)

		if failure.IsFailure(err) && !errors.Is(err, failure.Unauthenticated) {
			response.WithPage(w, failure.GetCode(err), response.PageBooking, response.View{
				Title:   titleBookTicket,
				User:    owner,
				Message: err.Error(),
			})

			return
		}

		log.Error().Err(err).Msg("failed to create booking")
		fail(w, r, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithPage(w, http.StatusOK, response.PageBooking, response.View{
		Title:   titleBookTicket,
		User:    owner,
		Message: fmt.Sprintf(messageBooked, booking.TicketCode, booking.PriceLabel()),
	})
}

// ViewBookings handles GET /view_bookings. Without page and limit every booking is listed.
func (handler *Handler) ViewBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewBookings")
	defer scope.End()

	owner := ownerFrom(ctx)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	bookings, err := handler.service.ListByOwner(ctx, owner, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		fail(w, r, err)

		return
	}

	response.WithPage(w, http.StatusOK, response.PageViewBookings, response.View{
		Title: "My Bookings",
		User:  owner,
		Data:  bookings,
	})
}

// DeleteBooking handles GET /delete_booking/{id}. Missing or foreign bookings are left alone.
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		fail(w, r, err)

		return
	}

	if err = handler.service.Delete(ctx, id, ownerFrom(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete booking")

		fail(w, r, err)

		return
	}

	http.Redirect(w, r, constant.PathViewBookings, http.StatusFound)
}

// EditBookingPage handles GET /edit_booking/{id} with the form pre-filled.
func (handler *Handler) EditBookingPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditBookingPage")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		fail(w, r, err)

		return
	}

	owner := ownerFrom(ctx)

	booking, err := handler.service.GetByOwner(ctx, id, owner)
	if err != nil {
		scope.TraceError(err)

		fail(w, r, err)

		return
	}

	response.WithPage(w, http.StatusOK, response.PageEditBooking, response.View{
		Title: "Edit Booking",
		User:  owner,
		Data:  EditData{ID: booking.ID, Booking: booking.ToRequest()},
	})
}

// UpdateBooking handles POST /edit_booking/{id}.
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		fail(w, r, err)

		return
	}

	req := dto.BookingRequest{}
	req.FromRequest(r)

	if err = handler.service.Update(ctx, id, ownerFrom(ctx), req); err != nil {
		scope.TraceError(err)

		if !failure.IsFailure(err) {
			log.Error().Err(err).Int64("id", id).Msg("failed to update booking")
		}

		fail(w, r, err)

		return
	}

	http.Redirect(w, r, constant.PathViewBookings, http.StatusFound)
}

// DownloadTicket handles GET /ticket/{id} and sends the e-ticket as a PDF.
func (handler *Handler) DownloadTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadTicket")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		fail(w, r, err)

		return
	}

	booking, err := handler.service.GetByOwner(ctx, id, ownerFrom(ctx))
	if err != nil {
		scope.TraceError(err)

		fail(w, r, err)

		return
	}

	document, err := handler.ticket.Render(booking)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to render ticket")

		response.WithError(w, err)

		return
	}

	response.WithPDF(w, ticket.Filename(booking), document)
}
