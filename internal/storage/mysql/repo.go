// Package mysql implements the hotel and user repositories on MySQL.
// The DSN must set parseTime=true so DATE and DATETIME columns scan
// into time.Time.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"staycation/internal/domain"
)

const (
	errDupEntry = 1062 // ER_DUP_ENTRY
	errNoParent = 1452 // ER_NO_REFERENCED_ROW_2
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valJSON(v []string) any {
	if v == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func isMySQLErr(err error, number uint16) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == number
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- hotels ----

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		h.Name,
		valStr(h.Location),
		valStr(h.City),
		valStr(h.Address),
		h.Rating,
		h.Price,
		valF64(h.OriginalPrice),
		valInt(h.Discount),
		valJSON(h.RoomTypes),
		valJSON(h.Amenities),
		valStr(h.Description),
		valJSON(h.Policies),
		valStr(h.Phone),
		valStr(h.Email),
		valStr(h.CheckInTime),
		valStr(h.CheckOutTime),
		h.SoldOut,
	)
	return err
}

func (r *Repo) EnsureHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, ensureHotelSQL, h.ID, h.Name)
	return err
}

func (r *Repo) AppendReview(ctx context.Context, hotelID int64, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		hotelID, rv.Author, rv.Rating, valStr(rv.Comment), rv.CreatedAt.UTC())
	if isMySQLErr(err, errNoParent) {
		return domain.ErrHotelNotFound
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHotel(row rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	var (
		location, city, address, desc   sql.NullString
		phone, email, checkIn, checkOut sql.NullString
		rating, discount                sql.NullInt64
		price, origPrice                sql.NullFloat64
		roomTypes, amenities, policies  []byte
	)
	if err := row.Scan(
		&h.ID, &h.Name,
		&location, &city, &address,
		&rating, &price, &origPrice, &discount,
		&roomTypes, &amenities,
		&desc, &policies,
		&phone, &email,
		&checkIn, &checkOut,
		&h.SoldOut,
	); err != nil {
		return domain.Hotel{}, err
	}
	h.Location = location.String
	h.City = city.String
	h.Address = address.String
	h.Rating = int(rating.Int64)
	h.Price = price.Float64
	if origPrice.Valid {
		f := origPrice.Float64
		h.OriginalPrice = &f
	}
	if discount.Valid {
		d := int(discount.Int64)
		h.Discount = &d
	}
	h.Description = desc.String
	h.Phone = phone.String
	h.Email = email.String
	h.CheckInTime = checkIn.String
	h.CheckOutTime = checkOut.String
	if len(roomTypes) > 0 {
		_ = json.Unmarshal(roomTypes, &h.RoomTypes)
	}
	if len(amenities) > 0 {
		_ = json.Unmarshal(amenities, &h.Amenities)
	}
	if len(policies) > 0 {
		_ = json.Unmarshal(policies, &h.Policies)
	}
	return h, nil
}

// GetHotel returns the hotel with its review history attached.
func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Hotel{}, domain.ErrHotelNotFound
		}
		return domain.Hotel{}, err
	}
	reviews, err := r.ListReviews(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if len(reviews) > 0 {
		h.Reviews = reviews
	}
	return h, nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) ListReviews(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		var comment sql.NullString
		if err := rows.Scan(&rv.Author, &rv.Rating, &comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		rv.Comment = comment.String
		out = append(out, rv)
	}
	return out, rows.Err()
}

// ---- users ----

func (r *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	u.Email = domain.NormalizeEmail(u.Email)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Name, u.Email, u.PasswordHash, u.Phone, u.CreatedAt)
	if err != nil {
		if isMySQLErr(err, errDupEntry) {
			return domain.ErrEmailTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *Repo) UserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.loadUser(ctx, r.db.QueryRowContext(ctx, userByIDSQL, id))
}

func (r *Repo) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.loadUser(ctx, r.db.QueryRowContext(ctx, userByEmailSQL, domain.NormalizeEmail(email)))
}

// loadUser scans the user row and attaches favorites and bookings.
func (r *Repo) loadUser(ctx context.Context, row *sql.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	favs, err := r.favorites(ctx, u.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("favorites: %w", err)
	}
	u.Favorites = favs

	bookings, err := r.bookings(ctx, u.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("bookings: %w", err)
	}
	u.Bookings = bookings
	return u, nil
}

func (r *Repo) favorites(ctx context.Context, userID int64) (domain.FavoriteSet, error) {
	rows, err := r.db.QueryContext(ctx, listFavoritesSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favs := domain.FavoriteSet{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		favs[id] = struct{}{}
	}
	return favs, rows.Err()
}

func (r *Repo) bookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		var status string
		if err := rows.Scan(
			&b.ID, &b.HotelID, &b.HotelName,
			&b.CheckIn, &b.CheckOut,
			&b.Guests.Adults, &b.Guests.Children,
			&b.TotalPrice, &status,
			&b.BookedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		b.Status = domain.BookingStatus(status)
		out = append(out, b)
	}
	return out, rows.Err()
}

// SaveFavorites replaces the user's favorite set in one transaction.
func (r *Repo) SaveFavorites(ctx context.Context, userID int64, favs domain.FavoriteSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteFavoritesSQL, userID); err != nil {
		return err
	}
	for _, id := range favs.IDs() {
		if _, err := tx.ExecContext(ctx, insertFavoriteSQL, userID, id); err != nil {
			if isMySQLErr(err, errNoParent) {
				return domain.ErrUserNotFound
			}
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) AppendBooking(ctx context.Context, userID int64, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID, userID, b.HotelID, b.HotelName,
		b.CheckIn.UTC(), b.CheckOut.UTC(),
		b.Guests.Adults, b.Guests.Children,
		b.TotalPrice, string(b.Status),
		b.BookedAt.UTC(), b.UpdatedAt.UTC(),
	)
	if isMySQLErr(err, errNoParent) {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *Repo) UpdateBooking(ctx context.Context, userID int64, b domain.Booking) error {
	res, err := r.db.ExecContext(ctx, updateBookingSQL, string(b.Status), b.UpdatedAt.UTC(), b.ID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
