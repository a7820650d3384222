package http

import (
	"bursary-portal/pkg/id"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// public ids (application, user) = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return id.Valid(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "alphanum":
			out = append(out, FieldError{Field: field, Message: "must contain only letters and digits"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
