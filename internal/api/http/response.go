package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/repository"
	"tutoring-center-backend/internal/security"
	"tutoring-center-backend/internal/service"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

var errBadRequest = errors.New("bad request")

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// bcrypt limits input by bytes while max counts characters
	v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// decodeJSON reads the body into dst and validates it
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body is empty", errBadRequest)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return validate.Struct(dst)
}

func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, security.ErrPasswordTooLong):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a service error onto a status code and error body.
// Internal errors are logged and hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		msg = validationMessage(verrs)
	case status == http.StatusInternalServerError:
		logger.ErrorContext(r.Context(), "Request failed", "request_id", RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
		msg = "internal server error"
	}

	writeJSON(w, status, ErrorResponse{Status: StatusError, Error: msg})
}

func validationMessage(errs validator.ValidationErrors) string {
	var msgs []string
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		case "eqfield":
			msgs = append(msgs, fmt.Sprintf("field %s must match %s", e.Field(), e.Param()))
		case "maxbytes":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s bytes", e.Field(), e.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
