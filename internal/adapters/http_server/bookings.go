package httpserver

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staycation/internal/adapters/observability"
	"staycation/internal/app"
	"staycation/internal/domain"
	"staycation/internal/pricing"
)

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var in bookingDTO
	if err := h.decode(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	checkIn, err := pricing.ParseDate(in.CheckIn)
	if err != nil {
		writeError(w, r, err)
		return
	}
	checkOut, err := pricing.ParseDate(in.CheckOut)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ident, _ := IdentityFrom(r.Context())
	b, err := h.Bookings.Create(r.Context(), ident.UserID, app.BookingRequest{
		HotelID:    in.HotelID,
		HotelName:  in.HotelName,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     domain.Guests{Adults: in.Guests.Adults, Children: in.Guests.Children},
		TotalPrice: in.TotalPrice,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	observability.ObserveBooking(string(b.Status))
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Booking created successfully", "booking": b})
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	ident, _ := IdentityFrom(r.Context())
	bs, err := h.Bookings.List(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bs})
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	h.transitionBooking(w, r, h.Bookings.Cancel)
}

func (h *Handlers) completeBooking(w http.ResponseWriter, r *http.Request) {
	h.transitionBooking(w, r, h.Bookings.Complete)
}

type transitionFunc func(ctx context.Context, userID int64, bookingID string) (domain.Booking, error)

func (h *Handlers) transitionBooking(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	ident, _ := IdentityFrom(r.Context())
	b, err := fn(r.Context(), ident.UserID, chi.URLParam(r, "bookingId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	observability.ObserveBooking(string(b.Status))
	writeJSON(w, http.StatusOK, map[string]any{"booking": b})
}
