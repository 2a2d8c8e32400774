package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blogapi/internal/logger"
)

// ErrorResponse is the standard single-message error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func WriteError(w http.ResponseWriter, detail string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Detail: detail})
}

// WriteServerError logs the cause and sends a fixed envelope; internal
// error text never reaches the client.
func WriteServerError(w http.ResponseWriter, err error) {
	logger.Error.Printf("request failed: %v", err)
	WriteError(w, "Internal server error.", http.StatusInternalServerError)
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteFieldErrors sends a 400 with per-field error messages.
func WriteFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(fields)
}

// WriteValidationError translates validator failures into field errors.
func WriteValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		WriteError(w, "Invalid request.", http.StatusBadRequest)
		return
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		message := "This field is invalid."
		if fe.Tag() == "required" {
			message = "This field is required."
		}
		fields[fe.Field()] = append(fields[fe.Field()], message)
	}

	WriteFieldErrors(w, fields)
}

// WriteNonFieldErrors is the credential-failure envelope of the token endpoint.
func WriteNonFieldErrors(w http.ResponseWriter, messages ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string][]string{"non_field_errors": messages})
}
