package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxRequestBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeInput reads a JSON body into v and validates it. It returns a
// message for the caller, empty when the input is acceptable.
func decodeInput(r *http.Request, v any) string {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	if err := dec.Decode(v); err != nil {
		return "Invalid request body"
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return validationMessage(verrs)
		}
		return "Invalid request body"
	}
	return ""
}

func validationMessage(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email address", field))
		case "datetime":
			parts = append(parts, fmt.Sprintf("%s must match %s", field, fe.Param()))
		case "numeric", "number":
			parts = append(parts, fmt.Sprintf("%s must be a number", field))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(parts, "; ")
}
