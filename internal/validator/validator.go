package validator

import (
	"time"

	"github.com/aerodesk/skypatterns/internal/schedule"
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("weekday", validateWeekday)
	v.RegisterValidation("hhmm", validateTimeOfDay)
	v.RegisterValidation("iana_tz", validateTimezone)
	v.RegisterValidation("iata", validateAirportCode)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := schedule.ParseWeekday(fl.Field().String())
	return ok
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := schedule.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

// validateTimezone requires a real IANA name. The UTC fallback in the core
// tolerates bad stored data; the admin boundary rejects it up front.
func validateTimezone(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

func validateAirportCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) < 3 || len(code) > 10 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
