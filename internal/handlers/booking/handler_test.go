package booking_test

import (
	otelMocks "busticket/infras/otel/mocks"
	bookingMocks "busticket/internal/domains/booking/mocks"
	"busticket/internal/domains/booking/model/dto"
	"busticket/internal/handlers/booking"
	"busticket/shared/constant"
	gDto "busticket/shared/dto"
	"busticket/shared/failure"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const owner = "a@x.com"

type fixture struct {
	router  *chi.Mux
	service *bookingMocks.MockBookingService
	ticket  *bookingMocks.MockRenderer
}

func withOwner(email string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserEmail, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newFixture(t *testing.T, email string) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := bookingMocks.NewMockBookingService(ctrl)
	ticketMock := bookingMocks.NewMockRenderer(ctrl)

	handler := booking.New(serviceMock, ticketMock, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(withOwner(email))
	handler.Router(router)

	return fixture{router: router, service: serviceMock, ticket: ticketMock}
}

func serve(f fixture, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(constant.RequestHeaderContentType, "application/x-www-form-urlencoded")

	return req
}

func bookingForm() url.Values {
	return url.Values{
		"source":      {"Pune"},
		"destination": {"Mumbai"},
		"date":        {"2024-05-01"},
		"user_phone":  {"9876543210"},
	}
}

var bookingRequest = dto.BookingRequest{Source: "Pune", Destination: "Mumbai", TravelDate: "2024-05-01", Phone: "9876543210"}

func TestHandler_Dashboard(t *testing.T) {
	t.Run("shows the booking count", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().CountByOwner(gomock.Any(), owner).Return(2, nil)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), owner)
		assert.Contains(t, rec.Body.String(), "<strong>2</strong>")
	})

	t.Run("missing identity redirects to login", func(t *testing.T) {
		f := newFixture(t, "")
		f.service.EXPECT().CountByOwner(gomock.Any(), "").Return(0, failure.Unauthenticated)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, constant.PathLogin, rec.Header().Get("Location"))
	})
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Run("shows code and price", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().Create(gomock.Any(), owner, bookingRequest).Return(dto.BookingResponse{
			ID: 7, TicketCode: "AB12CD34", Price: 100, OwnerEmail: owner,
		}, nil)

		rec := serve(f, postForm("/booking", bookingForm()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ticket booked successfully! Code: AB12CD34 | Price: ₹100")
	})

	t.Run("invalid phone stays on the form", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().Create(gomock.Any(), owner, gomock.Any()).Return(dto.BookingResponse{}, failure.InvalidPhone)

		rec := serve(f, postForm("/booking", bookingForm()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Enter a valid 10-digit phone number")
		assert.Contains(t, rec.Body.String(), `action="/booking"`)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().Create(gomock.Any(), owner, gomock.Any()).Return(dto.BookingResponse{}, errors.New("pq: down"))

		rec := serve(f, postForm("/booking", bookingForm()))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq: down")
	})
}

func TestHandler_ViewBookings(t *testing.T) {
	t.Run("lists every booking without paging", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().ListByOwner(gomock.Any(), owner, gDto.QueryParams{}).Return(dto.GetBookingsResponse{
			Bookings: []dto.BookingResponse{
				{ID: 1, Source: "Pune", Destination: "Mumbai", TravelDate: "2024-01-02", TicketCode: "AAAA1111", Price: 100},
				{ID: 2, Source: "Goa", Destination: "Pune", TravelDate: "2024-01-10", TicketCode: "BBBB2222", Price: 100},
			},
			Page:      1,
			TotalPage: 1,
			TotalData: 2,
		}, nil)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/view_bookings", nil))

		body := rec.Body.String()
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body, `href="/edit_booking/1"`)
		assert.Contains(t, body, `href="/ticket/2"`)
		assert.Less(t, strings.Index(body, "AAAA1111"), strings.Index(body, "BBBB2222"))
	})

	t.Run("passes page and limit through", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().ListByOwner(gomock.Any(), owner, gDto.QueryParams{Page: 2, Limit: 5}).Return(dto.GetBookingsResponse{}, nil)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/view_bookings?page=2&limit=5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No bookings yet")
	})
}

func TestHandler_DeleteBooking(t *testing.T) {
	t.Run("redirects to the list", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().Delete(gomock.Any(), int64(5), owner).Return(nil)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/delete_booking/5", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, constant.PathViewBookings, rec.Header().Get("Location"))
	})

	t.Run("non numeric id is not routed", func(t *testing.T) {
		f := newFixture(t, owner)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/delete_booking/abc", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("id overflowing int64", func(t *testing.T) {
		f := newFixture(t, owner)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/delete_booking/99999999999999999999", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_EditBooking(t *testing.T) {
	t.Run("pre-fills the form", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().GetByOwner(gomock.Any(), int64(3), owner).Return(dto.BookingResponse{
			ID: 3, Source: "Pune", Destination: "Mumbai", TravelDate: "2024-05-01", Phone: "9876543210",
		}, nil)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/edit_booking/3", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/edit_booking/3"`)
		assert.Contains(t, rec.Body.String(), `value="Pune"`)
	})

	t.Run("foreign booking", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().GetByOwner(gomock.Any(), int64(3), owner).Return(dto.BookingResponse{}, failure.NotFoundOrForbidden)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/edit_booking/3", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Booking not found or access denied")
	})

	t.Run("update redirects to the list", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().Update(gomock.Any(), int64(3), owner, bookingRequest).Return(nil)

		rec := serve(f, postForm("/edit_booking/3", bookingForm()))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, constant.PathViewBookings, rec.Header().Get("Location"))
	})

	t.Run("update of a foreign booking", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().Update(gomock.Any(), int64(3), owner, gomock.Any()).Return(failure.NotFoundOrForbidden)

		rec := serve(f, postForm("/edit_booking/3", bookingForm()))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Booking not found or access denied")
	})
}

func TestHandler_DownloadTicket(t *testing.T) {
	res := dto.BookingResponse{ID: 9, TicketCode: "ZX81QW00", OwnerEmail: owner}

	t.Run("sends the pdf", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().GetByOwner(gomock.Any(), int64(9), owner).Return(res, nil)
		f.ticket.EXPECT().Render(res).Return([]byte("%PDF-1.3"), nil)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/ticket/9", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypePDF, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Contains(t, rec.Header().Get(constant.RequestHeaderContentDisposition), "ticket-ZX81QW00.pdf")
	})

	t.Run("foreign booking", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().GetByOwner(gomock.Any(), int64(9), owner).Return(dto.BookingResponse{}, failure.NotFoundOrForbidden)

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/ticket/9", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("render failure", func(t *testing.T) {
		f := newFixture(t, owner)
		f.service.EXPECT().GetByOwner(gomock.Any(), int64(9), owner).Return(res, nil)
		f.ticket.EXPECT().Render(res).Return(nil, errors.New("qr failed"))

		rec := serve(f, httptest.NewRequest(http.MethodGet, "/ticket/9", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
