package dto

import (
	"busticket/internal/domains/account/model"
	gDto "busticket/shared/dto"
	gModel "busticket/shared/model"
	"busticket/shared/timezone"
	"net/http"
	"strings"
)

const (
	FormName     = "name"
	FormEmail    = "email"
	FormPassword = "password"
)

type RegisterRequest struct {
	Name     string `form:"name"     validate:"required,notblank,max=255"`
	Email    string `form:"email"    validate:"required,notblank,max=255"`
	Password string `form:"password" validate:"required,maxbytes=72"`
}

// FromRequest reads the registration form. Only the display name is trimmed; email and password are kept as submitted.
func (r *RegisterRequest) FromRequest(req *http.Request) {
	r.Name = strings.TrimSpace(req.PostFormValue(FormName))
	r.Email = req.PostFormValue(FormEmail)
	r.Password = req.PostFormValue(FormPassword)
}

func (r *RegisterRequest) ToModel(hashedPassword string) model.Account {
	now := timezone.Now()

	return model.Account{
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: hashedPassword,
		Metadata:     gModel.NewMetadata(now, r.Email),
	}
}

type LoginRequest struct {
	Email    string `form:"email"    validate:"required,notblank"`
	Password string `form:"password" validate:"required"`
}

func (l *LoginRequest) FromRequest(req *http.Request) {
	l.Email = req.PostFormValue(FormEmail)
	l.Password = req.PostFormValue(FormPassword)
}

// EmailFilter selects the account registered under email.
func EmailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
