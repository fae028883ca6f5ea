package shared

import (
	"busticket/shared/constant"
	"busticket/shared/dto"
	"busticket/shared/timezone"
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/lib/pq"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts every db-tagged field of a struct into a map of column values.
// Zero values are kept so an update overwrites the stored row with exactly what was submitted.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}
}

// BuildCacheKey joins the non-empty parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// IsUniqueViolation reports whether err is a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
