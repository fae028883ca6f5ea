package dto_test

import (
	"busticket/internal/domains/account/model/dto"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

func TestRegisterRequest_FromRequest(t *testing.T) {
	req := formRequest(url.Values{
		"name":     {"  Asha  "},
		"email":    {" a@x.com "},
		"password": {" pw with spaces "},
	})

	var reg dto.RegisterRequest
	reg.FromRequest(req)

	assert.Equal(t, "Asha", reg.Name)
	assert.Equal(t, " a@x.com ", reg.Email)
	assert.Equal(t, " pw with spaces ", reg.Password)
}

func TestRegisterRequest_ToModel(t *testing.T) {
	reg := dto.RegisterRequest{Name: "Asha", Email: "a@x.com", Password: "secret"}

	account := reg.ToModel("$2a$10$hash")

	assert.Zero(t, account.ID)
	assert.Equal(t, "Asha", account.Name)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, "$2a$10$hash", account.PasswordHash)
	assert.Equal(t, "a@x.com", account.CreatedBy)
	assert.Equal(t, account.CreatedAt, account.ModifiedAt)
}

func TestLoginRequest_FromRequest(t *testing.T) {
	var login dto.LoginRequest
	login.FromRequest(formRequest(url.Values{"email": {"A@x.com "}, "password": {"secret"}}))

	assert.Equal(t, "A@x.com ", login.Email)
	assert.Equal(t, "secret", login.Password)
}

func TestEmailFilter(t *testing.T) {
	filter := dto.EmailFilter("a@x.com")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(accounts.email = :email)", where)
	assert.Equal(t, map[string]any{"email": "a@x.com"}, args)
}
