package model

import "busticket/shared/model"

const (
	TableName  = "accounts"
	EntityName = "account"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
)

type Account struct {
	ID           int64  `db:"id"            generated:"true"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	model.Metadata
}
