package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"staycation/internal/domain"
)

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageBody{Message: msg})
}

// writeError maps service errors onto status codes. Anything unclassified
// is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve invalidInput
	switch {
	case errors.As(err, &ve):
		writeMessage(w, http.StatusBadRequest, ve.msg)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "Invalid email or password")
	case errors.Is(err, domain.ErrEmailTaken):
		writeMessage(w, http.StatusBadRequest, "User already exists with this email")
	case errors.Is(err, domain.ErrInvalidToken):
		writeMessage(w, http.StatusForbidden, "Invalid token")
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidGuests),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrValidation):
		writeMessage(w, http.StatusBadRequest, capitalize(err.Error()))
	case errors.Is(err, domain.ErrPaymentDeclined):
		writeMessage(w, http.StatusPaymentRequired, "Payment declined")
	case errors.Is(err, domain.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrHotelNotFound):
		writeMessage(w, http.StatusNotFound, "Hotel not found")
	case errors.Is(err, domain.ErrBookingNotFound):
		writeMessage(w, http.StatusNotFound, "Booking not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeMessage(w, http.StatusConflict, capitalize(err.Error()))
	default:
		log.Error().
			Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("route", routePattern(r)).
			Msg("request failed")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable answers 304 when the client already holds this version.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}
