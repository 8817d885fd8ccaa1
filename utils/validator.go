package utils

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// isodate: a YYYY-MM-DD string
	_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	// sunday: a YYYY-MM-DD string or time.Time falling on a Sunday
	_ = validate.RegisterValidation("sunday", func(fl validator.FieldLevel) bool {
		switch v := fl.Field().Interface().(type) {
		case string:
			d, err := ParseDate(v)
			return err == nil && IsSunday(d)
		case time.Time:
			return IsSunday(DateOf(v))
		default:
			return false
		}
	})
}

// ValidateStruct validates obj against its validate tags.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

// ValidateVar validates a single value against tag.
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
