package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
)

var errNoDB = fmt.Errorf("database not available")

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert stores a booking row and returns its id.
func (r BookingRepo) Insert(b models.Booking) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.Exec(`
		INSERT INTO bookings (booking_reference, schedule_id, user_id, passenger_count, total_price, booking_status, payment_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`, b.BookingReference, b.ScheduleID, b.UserID, b.PassengerCount, b.TotalPrice, b.BookingStatus, b.PaymentStatus)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertSeats stores the seat labels of a booking.
func (r BookingRepo) InsertSeats(bookingID int64, labels []string) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	for _, label := range labels {
		label = strings.TrimSpace(strings.ToUpper(label))
		if label == "" {
			continue
		}
		if _, err := db.Exec(`
			INSERT INTO booking_seats (booking_id, seat_label, created_at)
			VALUES (?, ?, NOW())
		`, bookingID, label); err != nil {
			return err
		}
	}
	return nil
}

// GetByReference loads one booking with its seat labels.
func (r BookingRepo) GetByReference(reference string) (models.Booking, error) {
	var b models.Booking
	db := r.db()
	if db == nil {
		return b, errNoDB
	}
	var scheduleID, userID sql.NullInt64
	var createdAt sql.NullString

	err := db.QueryRow(`
		SELECT id, booking_reference, schedule_id, user_id, passenger_count, total_price, booking_status, payment_status, created_at
		FROM bookings
		WHERE booking_reference = ?
	`, strings.TrimSpace(reference)).Scan(
		&b.ID,
		&b.BookingReference,
		&scheduleID,
		&userID,
		&b.PassengerCount,
		&b.TotalPrice,
		&b.BookingStatus,
		&b.PaymentStatus,
		&createdAt,
	)
	if err != nil {
		return b, err
	}
	if scheduleID.Valid {
		b.ScheduleID = &scheduleID.Int64
	}
	if userID.Valid {
		b.UserID = &userID.Int64
	}
	b.CreatedAt = createdAt.String

	labels, err := r.seatLabels(b.ID)
	if err != nil {
		return b, err
	}
	b.SeatLabels = labels
	return b, nil
}

// ListByUser returns a user's bookings, newest first, seats included.
func (r BookingRepo) ListByUser(userID int64) ([]models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.Query(`
		SELECT id, booking_reference, schedule_id, passenger_count, total_price, booking_status, payment_status, created_at
		FROM bookings
		WHERE user_id = ?
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var scheduleID sql.NullInt64
		var createdAt sql.NullString
		if err := rows.Scan(
			&b.ID,
			&b.BookingReference,
			&scheduleID,
			&b.PassengerCount,
			&b.TotalPrice,
			&b.BookingStatus,
			&b.PaymentStatus,
			&createdAt,
		); err != nil {
			return out, err
		}
		if scheduleID.Valid {
			b.ScheduleID = &scheduleID.Int64
		}
		uid := userID
		b.UserID = &uid
		b.CreatedAt = createdAt.String
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}

	for i := range out {
		labels, err := r.seatLabels(out[i].ID)
		if err != nil {
			return out, err
		}
		out[i].SeatLabels = labels
	}
	return out, nil
}

func (r BookingRepo) seatLabels(bookingID int64) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT seat_label FROM booking_seats WHERE booking_id = ? ORDER BY id ASC
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return out, err
		}
		out = append(out, label)
	}
	return out, rows.Err()
}
