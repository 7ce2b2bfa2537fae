package services

import (
	"database/sql"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/repositories"
)

// BookingService persists completed bookings and reads them back for the
// bookings surface.
type BookingService struct {
	BookingRepo repositories.BookingRepo
	DB          *sql.DB
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: s.db()}
}

// Record writes the booking row and its seat labels. Seat labels are
// best-effort: a failed seat insert does not undo the booking row.
func (s BookingService) Record(b models.Booking) error {
	if b.BookingReference == "" {
		return domain.ValidationError{Field: "booking_reference", Msg: "missing reference"}
	}
	if b.PassengerCount <= 0 {
		return domain.ValidationError{Field: "passenger_count", Msg: "must be positive"}
	}

	id, err := s.bookings().Insert(b)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if err := s.bookings().InsertSeats(id, b.SeatLabels); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// GetByReference loads one booking.
func (s BookingService) GetByReference(reference string) (models.Booking, error) {
	b, err := s.bookings().GetByReference(reference)
	if err != nil {
		if err == sql.ErrNoRows {
			return b, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

// ListForUser returns a user's bookings, newest first.
func (s BookingService) ListForUser(userID int64) ([]models.Booking, error) {
	out, err := s.bookings().ListByUser(userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
