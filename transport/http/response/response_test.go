package response_test

import (
	"busticket/shared/constant"
	"busticket/shared/failure"
	"busticket/transport/http/response"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithPage(t *testing.T) {
	t.Run("renders the page inside the layout", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithPage(rec, http.StatusOK, response.PageDashboard, response.View{
			User: "a@x.com",
			Data: map[string]any{"TotalBookings": 3},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypeHTML, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Contains(t, rec.Body.String(), "Welcome, a@x.com")
		assert.Contains(t, rec.Body.String(), "<strong>3</strong>")
		assert.Contains(t, rec.Body.String(), `href="/logout"`)
	})

	t.Run("escapes user input", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithPage(rec, http.StatusOK, response.PageLogin, response.View{Message: "<script>x</script>"})

		assert.NotContains(t, rec.Body.String(), "<script>x</script>")
		assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
	})

	t.Run("template failure yields a clean 500", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithPage(rec, http.StatusOK, response.PageDashboard, response.View{User: "a@x.com", Data: 42})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, constant.ResponseErrorInternal, rec.Body.String())
	})

	t.Run("unknown page", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithPage(rec, http.StatusOK, response.Page("missing"), response.View{})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "domain failure keeps its message",
			err:         fmt.Errorf("update: %w", failure.NotFoundOrForbidden),
			wantCode:    http.StatusNotFound,
			wantMessage: failure.NotFoundOrForbidden.Message,
		},
		{
			name:        "internal error hides detail",
			err:         errors.New("pq: connection refused"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: constant.ResponseErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestWithPDF(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPDF(rec, "ticket-ABCD1234.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypePDF, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="ticket-ABCD1234.pdf"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestShutdownResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, constant.ResponseErrorPrepareShutdown, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithUnhealthy(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, constant.ResponseErrorUnhealthy, rec.Body.String())
}
