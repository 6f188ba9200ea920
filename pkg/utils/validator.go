package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct ตรวจ struct ตาม validate tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors แปลง validator errors เป็น map field -> message
// field name ใช้ lowercase ให้ตรงกับ json ฝั่ง client
func GetValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["error"] = err.Error()
		return errors
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errors[field] = "invalid email format"
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		case "eqfield":
			errors[field] = fmt.Sprintf("%s does not match %s", field, strings.ToLower(e.Param()))
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s", field, e.Param())
		case "hexcolor":
			errors[field] = fmt.Sprintf("%s must be a hex color", field)
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return errors
}
