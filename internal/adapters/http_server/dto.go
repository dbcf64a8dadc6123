package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"staycation/internal/domain"
)

type registerDTO struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone" validate:"required"`
}

type loginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type guestsDTO struct {
	Adults   int `json:"adults" validate:"gte=0"`
	Children int `json:"children" validate:"gte=0"`
}

type bookingDTO struct {
	HotelID    int64     `json:"hotelId" validate:"required,gt=0"`
	HotelName  string    `json:"hotelName" validate:"max=255"`
	CheckIn    string    `json:"checkIn" validate:"required"`
	CheckOut   string    `json:"checkOut" validate:"required"`
	Guests     guestsDTO `json:"guests"`
	TotalPrice float64   `json:"totalPrice"`
}

type reviewDTO struct {
	Rating  looseInt `json:"rating"`
	Comment string   `json:"comment" validate:"max=2000"`
}

// looseInt accepts a JSON number or a numeric string and truncates toward
// zero, so "5", 5 and 5.9 all read as 5. A non-numeric string reads as 0
// and fails the rating range check downstream.
type looseInt int

func (n *looseInt) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*n = 0
	case float64:
		if math.Abs(v) > math.MaxInt32 {
			v = 0
		}
		*n = looseInt(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
			*n = 0
			return nil
		}
		*n = looseInt(f)
	default:
		return fmt.Errorf("expected a number, got %T", raw)
	}
	return nil
}

// invalidInput carries a client-facing message for a malformed request.
type invalidInput struct{ msg string }

func (e invalidInput) Error() string { return e.msg }

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json field names instead of Go ones.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and validates it.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return invalidInput{msg: "Invalid JSON body"}
	}
	if err := h.validate.Struct(dst); err != nil {
		return invalidInput{msg: validationMessage(err)}
	}
	return nil
}

func validationMessage(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return "Invalid request"
	}
	fe := ves[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s is out of range", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// ---- response views ----

type userView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Favorites []int64 `json:"favorites"`
}

type profileView struct {
	userView
	Bookings []domain.Booking `json:"bookings"`
}

func toUserView(u domain.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Favorites: u.Favorites.IDs()}
}

func toProfileView(u domain.User) profileView {
	bs := u.Bookings
	if bs == nil {
		bs = []domain.Booking{}
	}
	return profileView{userView: toUserView(u), Bookings: bs}
}
