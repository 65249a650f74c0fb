package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrymomot/jobportal/pkg/validator"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// ErrInvalidBody is returned by Decode for malformed or oversized bodies.
var ErrInvalidBody = errors.New("response.invalid_body")

// Result is the envelope of every JSON answer: a success flag and a user
// facing message, plus optional payload or field errors.
type Result struct {
	Success bool                        `json:"success"`
	Message string                      `json:"message"`
	Data    any                         `json:"data,omitempty"`
	Errors  []validator.ValidationError `json:"errors,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success writes a successful Result.
func Success(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, Result{Success: true, Message: message, Data: data})
}

// Fail writes a failed Result.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Result{Success: false, Message: message})
}

// ValidationFailed answers 400 with the first failure as the message and
// the full list in errors.
func ValidationFailed(w http.ResponseWriter, errs validator.ValidationErrors) {
	JSON(w, http.StatusBadRequest, Result{Success: false, Message: errs.First(), Errors: errs})
}

// Decode reads a single JSON object from the request body into v.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}
	return nil
}
