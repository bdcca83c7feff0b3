package utils

import (
	"deskwise-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("time_preference", validateTimePreference)
	validate.RegisterValidation("recurrence_type", validateRecurrenceType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTimePreference(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.TimePreferenceMorning ||
		value == constvars.TimePreferenceAfternoon ||
		value == constvars.TimePreferenceAny
}

func validateRecurrenceType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RecurrenceTypeDaily ||
		value == constvars.RecurrenceTypeWeekly ||
		value == constvars.RecurrenceTypeMonthly
}
