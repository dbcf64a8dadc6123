package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, location, city, address, rating, price, original_price, discount,
   room_types, amenities, description, policies, phone, email,
   check_in_time, check_out_time, sold_out)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name           = VALUES(name),
  location       = VALUES(location),
  city           = VALUES(city),
  address        = VALUES(address),
  rating         = VALUES(rating),
  price          = VALUES(price),
  original_price = VALUES(original_price),
  discount       = VALUES(discount),
  room_types     = VALUES(room_types),
  amenities      = VALUES(amenities),
  description    = VALUES(description),
  policies       = VALUES(policies),
  phone          = VALUES(phone),
  email          = VALUES(email),
  check_in_time  = VALUES(check_in_time),
  check_out_time = VALUES(check_out_time),
  sold_out       = VALUES(sold_out),
  updated_at     = CURRENT_TIMESTAMP
`

// INSERT IGNORE keeps an existing row untouched; the lazily created
// placeholder only lands when the id is new.
const ensureHotelSQL = `
INSERT IGNORE INTO hotels (id, name) VALUES (?, ?)
`

const insertReviewSQL = `
INSERT INTO hotel_reviews (hotel_id, author, rating, comment, created_at)
VALUES (?, ?, ?, ?, ?)
`

const hotelColumns = `
  id, name, location, city, address, rating, price, original_price, discount,
  room_types, amenities, description, policies, phone, email,
  check_in_time, check_out_time, sold_out
`

const getHotelSQL = `SELECT` + hotelColumns + `FROM hotels WHERE id = ?`

// Catalog listing skips placeholder rows that only exist to hold reviews.
const listHotelsSQL = `SELECT` + hotelColumns + `FROM hotels WHERE price IS NOT NULL AND price > 0 ORDER BY id`

// Oldest first: review history is append-only and shown in insertion order.
const listReviewsSQL = `
SELECT author, rating, comment, created_at
FROM hotel_reviews
WHERE hotel_id = ?
ORDER BY created_at, id
`

const insertUserSQL = `
INSERT INTO users (name, email, password_hash, phone, created_at)
VALUES (?, ?, ?, ?, ?)
`

const userByIDSQL = `SELECT id, name, email, password_hash, phone, created_at FROM users WHERE id = ?`

const userByEmailSQL = `SELECT id, name, email, password_hash, phone, created_at FROM users WHERE email = ?`

const listFavoritesSQL = `SELECT hotel_id FROM user_favorites WHERE user_id = ? ORDER BY hotel_id`

const deleteFavoritesSQL = `DELETE FROM user_favorites WHERE user_id = ?`

const insertFavoriteSQL = `INSERT INTO user_favorites (user_id, hotel_id) VALUES (?, ?)`

const insertBookingSQL = `
INSERT INTO bookings
  (id, user_id, hotel_id, hotel_name, check_in, check_out, adults, children,
   total_price, status, booked_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const listBookingsSQL = `
SELECT id, hotel_id, hotel_name, check_in, check_out, adults, children,
       total_price, status, booked_at, updated_at
FROM bookings
WHERE user_id = ?
ORDER BY seq
`

const updateBookingSQL = `
UPDATE bookings SET status = ?, updated_at = ? WHERE id = ? AND user_id = ?
`
