package dto

import (
	"busticket/internal/domains/booking/model"
	"busticket/shared"
	gDto "busticket/shared/dto"
	gModel "busticket/shared/model"
	"busticket/shared/timezone"
	"net/http"
	"strconv"
	"strings"
)

const (
	FormSource      = "source"
	FormDestination = "destination"
	FormDate        = "date"
	FormPhone       = "user_phone"
)

// BookingRequest is the booking form. Route and date stay opaque strings.
type BookingRequest struct {
	Source      string `db:"source"      form:"source"`
	Destination string `db:"destination" form:"destination"`
	TravelDate  string `db:"travel_date" form:"date"`
	Phone       string `db:"phone"       form:"user_phone"`
}

func (b *BookingRequest) FromRequest(req *http.Request) {
	b.Source = strings.TrimSpace(req.PostFormValue(FormSource))
	b.Destination = strings.TrimSpace(req.PostFormValue(FormDestination))
	b.TravelDate = strings.TrimSpace(req.PostFormValue(FormDate))
	b.Phone = strings.TrimSpace(req.PostFormValue(FormPhone))
}

func (b *BookingRequest) ToModel(owner, ticketCode string, price float64) model.Booking {
	return model.Booking{
		Source:      b.Source,
		Destination: b.Destination,
		TravelDate:  b.TravelDate,
		OwnerEmail:  owner,
		Phone:       b.Phone,
		TicketCode:  ticketCode,
		Price:       price,
		Metadata:    gModel.NewMetadata(timezone.Now(), owner),
	}
}

type BookingResponse struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	TravelDate  string  `json:"travel_date"`
	OwnerEmail  string  `json:"owner_email"`
	Phone       string  `json:"phone"`
	TicketCode  string  `json:"ticket_code"`
	Price       float64 `json:"price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Source = model.Source
	r.Destination = model.Destination
	r.TravelDate = model.TravelDate
	r.OwnerEmail = model.OwnerEmail
	r.Phone = model.Phone
	r.TicketCode = model.TicketCode
	r.Price = model.Price
	r.Metadata.FromModel(model.Metadata)
}

// PriceLabel formats the price without trailing zeros, so 100 prints as "100".
func (r BookingResponse) PriceLabel() string {
	return FormatPrice(r.Price)
}

// ToRequest pre-fills the edit form.
func (r BookingResponse) ToRequest() BookingRequest {
	return BookingRequest{
		Source:      r.Source,
		Destination: r.Destination,
		TravelDate:  r.TravelDate,
		Phone:       r.Phone,
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Page      int               `json:"page"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.Page = max(params.Page, 1)
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// OwnerFilter selects every booking owned by owner.
func OwnerFilter(owner string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    owner,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// OwnedFilter selects booking id only when owner holds it.
func OwnedFilter(id int64, owner string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldOwnerEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    owner,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
