package response

import (
	"busticket/shared/constant"
	"busticket/shared/failure"
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

type Page string

const (
	PageRegister     Page = "register"
	PageLogin        Page = "login"
	PageDashboard    Page = "dashboard"
	PageBooking      Page = "booking"
	PageViewBookings Page = "view_bookings"
	PageEditBooking  Page = "edit_booking"
	PageError        Page = "error"
)

const layoutFile = "templates/layout.html"

var pages = parsePages(PageRegister, PageLogin, PageDashboard, PageBooking, PageViewBookings, PageEditBooking, PageError)

// View is what every page template receives.
type View struct {
	Title   string
	Message string
	User    string
	Data    any
}

func parsePages(names ...Page) map[Page]*template.Template {
	parsed := make(map[Page]*template.Template, len(names))

	for _, name := range names {
		parsed[name] = template.Must(template.New("layout.html").ParseFS(templateFS, layoutFile, fmt.Sprintf("templates/%s.html", name)))
	}

	return parsed
}

// WithPage renders page inside the shared layout.
func WithPage(writer http.ResponseWriter, code int, page Page, view View) {
	tmpl, ok := pages[page]
	if !ok {
		log.Error().Str("page", string(page)).Msg("unknown page")
		WithText(writer, http.StatusInternalServerError, constant.ResponseErrorInternal)

		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		log.Error().Err(err).Str("page", string(page)).Msg("failed to render page")
		WithText(writer, http.StatusInternalServerError, constant.ResponseErrorInternal)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := writer.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// WithError renders the error page. Messages of server errors are not shown to the user.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		message = constant.ResponseErrorInternal
	}

	WithPage(writer, code, PageError, View{Title: http.StatusText(code), Message: message})
}

// WithText sends a plain text body.
func WithText(writer http.ResponseWriter, code int, text string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeText)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(text)); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// WithPDF sends document as a download named filename.
func WithPDF(writer http.ResponseWriter, filename string, document []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypePDF)
	writer.Header().Set(constant.RequestHeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))
	writer.Header().Set(constant.RequestHeaderCacheControl, "no-store")
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(document); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithText(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithText(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}
