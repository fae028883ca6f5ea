package validator

import (
	"busticket/shared/failure"
	"reflect"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	formTag = "form"
)

var validate *val.Validate

func registerNotBlankValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return strings.TrimSpace(str) != ""
}

// maxBytesValidation bounds the encoded length of a string, unlike max which counts runes.
func maxBytesValidation(field val.FieldLevel) bool {
	limit, err := strconv.Atoi(field.Param())
	if err != nil {
		return false
	}

	return len(field.Field().String()) <= limit
}

func fieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get(formTag), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	err := validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxbytes", maxBytesValidation)
	if err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator package.
// Field names in messages come from the `form` tag so they match the submitted inputs.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
