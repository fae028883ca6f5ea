// Package ticket renders the printable e-ticket of a booking.
package ticket

//go:generate go run go.uber.org/mock/mockgen -source=./ticket.go -destination=../mocks/ticket_mock.go -package=mocks

import (
	"busticket/config"
	"busticket/internal/domains/booking/model/dto"
	"bytes"
	"fmt"
	"strconv"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	qrImageName = "ticket-qr"
	qrPixels    = 256
	qrSizeMM    = 50.0

	fontFamily  = "Helvetica"
	labelWidth  = 40.0
	lineHeight  = 9.0
	pageMarginX = 15.0
)

type Renderer interface {
	Render(booking dto.BookingResponse) ([]byte, error)
}

type pdfRenderer struct {
	title string
}

func New(cfg *config.Config) Renderer {
	return &pdfRenderer{
		title: cfg.App.Name,
	}
}

// Filename is the download name of a booking's ticket.
func Filename(booking dto.BookingResponse) string {
	return fmt.Sprintf("ticket-%s.pdf", booking.TicketCode)
}

// Render builds an A5 PDF with the booking details and a QR code of the ticket code.
func (r *pdfRenderer) Render(booking dto.BookingResponse) ([]byte, error) {
	qr, err := qrcode.Encode(booking.TicketCode, qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ticket qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Bus Ticket "+booking.TicketCode, true)
	pdf.SetAuthor(r.title, true)
	pdf.SetMargins(pageMarginX, pageMarginX, pageMarginX)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(0, 12, tr("Bus Ticket"), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, tr(r.title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Ticket Code", booking.TicketCode},
		{"Booking ID", strconv.FormatInt(booking.ID, 10)},
		{"From", booking.Source},
		{"To", booking.Destination},
		{"Travel Date", booking.TravelDate},
		{"Passenger", booking.OwnerEmail},
		{"Phone", booking.Phone},
		{"Price", "Rs. " + booking.PriceLabel()},
	}

	for _, row := range rows {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(labelWidth, lineHeight, tr(row[0]), "B", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		pdf.CellFormat(0, lineHeight, tr(row[1]), "B", 1, "L", false, 0, "")
	}

	options := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(qrImageName, options, bytes.NewReader(qr))

	pageWidth, _ := pdf.GetPageSize()
	pdf.ImageOptions(qrImageName, (pageWidth-qrSizeMM)/2, pdf.GetY()+8, qrSizeMM, qrSizeMM, false, options, 0, "")

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket pdf: %w", err)
	}

	return buf.Bytes(), nil
}
