package httpserver

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"staycation/internal/app"
	"staycation/internal/catalog"
	"staycation/internal/pagination"
	"staycation/internal/pricing"
)

const maxPageSize = 100

type Handlers struct {
	Auth     *app.AuthService
	Users    *app.UserService
	Bookings *app.BookingService
	Reviews  *app.ReviewService
	Q        *app.QueryService
	// AuthLimiter throttles /auth routes per client. Nil disables it.
	AuthLimiter *RateLimiter

	validate *validator.Validate
}

func (s *Server) MountHandlers(h *Handlers) {
	h.validate = newValidator()

	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Group(func(r chi.Router) {
			r.Use(h.AuthLimiter.Middleware)
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
		})

		r.Get("/hotels", h.searchHotels)
		r.Get("/hotels/{hotelId}", h.getHotel)
		r.Get("/hotels/{hotelId}/quote", h.quote)
		r.Get("/hotels/{hotelId}/reviews", h.listReviews)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(h.Auth))
			r.Get("/user/profile", h.profile)
			r.Post("/user/favorites/{hotelId}", h.toggleFavorite)
			r.Post("/bookings", h.createBooking)
			r.Get("/bookings", h.listBookings)
			r.Post("/bookings/{bookingId}/cancel", h.cancelBooking)
			r.Post("/bookings/{bookingId}/complete", h.completeBooking)
			r.Post("/hotels/{hotelId}/reviews", h.addReview)
		})
	})
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK", "message": "Server is running"})
}

// hotelID parses the {hotelId} path segment.
func hotelID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "hotelId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidInput{msg: "hotelId must be a positive number"}
	}
	return id, nil
}

// ---- hotels ----

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	p, err := parseSearch(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.Q.Search(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, res)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := hotelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	hotel, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, map[string]any{"hotel": hotel})
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	id, err := hotelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	checkIn, err := pricing.ParseDate(r.URL.Query().Get("checkIn"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	checkOut, err := pricing.ParseDate(r.URL.Query().Get("checkOut"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	q, err := h.Bookings.Quote(r.Context(), id, checkIn, checkOut)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// parseSearch reads the listing query string. Lists may be given as
// repeated parameters, comma separated values, or both.
func parseSearch(v url.Values) (app.SearchParams, error) {
	p := app.SearchParams{
		Query:    catalog.Query{Location: strings.TrimSpace(v.Get("q"))},
		Filters:  catalog.DefaultFilters(),
		Page:     1,
		PageSize: pagination.DefaultPageSize,
	}
	var err error
	if p.Filters.PriceMin, err = floatParam(v, "minPrice", p.Filters.PriceMin); err != nil {
		return p, err
	}
	if p.Filters.PriceMax, err = floatParam(v, "maxPrice", p.Filters.PriceMax); err != nil {
		return p, err
	}
	for _, s := range listParam(v, "stars") {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 5 {
			return p, invalidInput{msg: "stars must be between 1 and 5"}
		}
		p.Filters.Stars = append(p.Filters.Stars, n)
	}
	p.Filters.RoomTypes = listParam(v, "roomTypes")
	p.Filters.Amenities = listParam(v, "amenities")

	if p.Sort, err = catalog.ParseSortKey(v.Get("sort")); err != nil {
		return p, err
	}
	if p.Page, err = intParam(v, "page", 1); err != nil || p.Page < 1 {
		return p, invalidInput{msg: "page must be a positive integer"}
	}
	if p.PageSize, err = intParam(v, "pageSize", pagination.DefaultPageSize); err != nil || p.PageSize < 1 || p.PageSize > maxPageSize {
		return p, invalidInput{msg: "pageSize must be between 1 and 100"}
	}
	return p, nil
}

func floatParam(v url.Values, key string, def float64) (float64, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, invalidInput{msg: key + " must be a non-negative number"}
	}
	return f, nil
}

func intParam(v url.Values, key string, def int) (int, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func listParam(v url.Values, key string) []string {
	var out []string
	for _, raw := range v[key] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// ---- reviews ----

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id, err := hotelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rs, err := h.Reviews.List(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, map[string]any{"reviews": rs})
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	id, err := hotelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in reviewDTO
	if err := h.decode(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	ident, _ := IdentityFrom(r.Context())
	u, err := h.Users.Profile(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rv, err := h.Reviews.Add(r.Context(), id, u.Name, int(in.Rating), in.Comment)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Review added successfully", "review": rv})
}
