package ticket_test

import (
	"busticket/config"
	"busticket/internal/domains/booking/model/dto"
	"busticket/internal/domains/booking/ticket"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "busticket"

	booking := dto.BookingResponse{
		ID:          7,
		Source:      "Pune",
		Destination: "Mumbai",
		TravelDate:  "2024-05-01",
		OwnerEmail:  "a@x.com",
		Phone:       "9876543210",
		TicketCode:  "AB12CD34",
		Price:       100,
	}

	doc, err := ticket.New(cfg).Render(booking)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Greater(t, len(doc), 1000)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ticket-AB12CD34.pdf", ticket.Filename(dto.BookingResponse{TicketCode: "AB12CD34"}))
}
