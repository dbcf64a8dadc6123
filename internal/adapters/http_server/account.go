package httpserver

import (
	"net/http"

	"staycation/internal/adapters/observability"
	"staycation/internal/app"
)

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var in registerDTO
	if err := h.decode(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	u, tok, err := h.Auth.Register(r.Context(), app.RegisterInput{
		Name: in.Name, Email: in.Email, Password: in.Password, Phone: in.Phone,
	})
	observability.ObserveAuth("register", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   tok,
		"user":    toUserView(u),
	})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in loginDTO
	if err := h.decode(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	u, tok, err := h.Auth.Login(r.Context(), in.Email, in.Password)
	observability.ObserveAuth("login", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   tok,
		"user":    toUserView(u),
	})
}

func (h *Handlers) profile(w http.ResponseWriter, r *http.Request) {
	ident, _ := IdentityFrom(r.Context())
	u, err := h.Users.Profile(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": toProfileView(u)})
}

func (h *Handlers) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := hotelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ident, _ := IdentityFrom(r.Context())
	added, favs, err := h.Users.ToggleFavorite(r.Context(), ident.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	msg := "Removed from favorites"
	if added {
		msg = "Added to favorites"
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msg, "favorites": favs})
}
