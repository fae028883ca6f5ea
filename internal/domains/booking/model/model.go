package model

import (
	"busticket/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldSource      = "source"
	FieldDestination = "destination"
	FieldTravelDate  = "travel_date"
	FieldOwnerEmail  = "owner_email"
	FieldPhone       = "phone"
	FieldTicketCode  = "ticket_code"
	FieldPrice       = "price"
)

// SortByTravelDate orders travel dates byte-wise, never calendar aware.
const SortByTravelDate = TableName + "." + FieldTravelDate + ` COLLATE "C"`

type Booking struct {
	ID          int64   `db:"id"          generated:"true"`
	Source      string  `db:"source"`
	Destination string  `db:"destination"`
	TravelDate  string  `db:"travel_date"`
	OwnerEmail  string  `db:"owner_email"`
	Phone       string  `db:"phone"`
	TicketCode  string  `db:"ticket_code"`
	Price       float64 `db:"price"`
	model.Metadata
}
