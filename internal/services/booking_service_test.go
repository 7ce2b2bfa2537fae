package services

import (
	"testing"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(false)
	return BookingService{BookingRepo: repositories.BookingRepo{DB: db}, DB: db}, mock
}

func TestBookingRecord(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("UGR123456", nil, nil, 2, int64(95000), "confirmed", "paid").
		WillReturnResult(sqlmock.NewResult(41, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WithArgs(int64(41), "A-1A").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WithArgs(int64(41), "B-3D").
		WillReturnResult(sqlmock.NewResult(2, 1))

	err := svc.Record(models.Booking{
		BookingReference: "UGR123456",
		PassengerCount:   2,
		TotalPrice:       95000,
		BookingStatus:    "confirmed",
		PaymentStatus:    "paid",
		SeatLabels:       []string{"A-1A", "B-3D"},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRecordValidation(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.Record(models.Booking{PassengerCount: 2})
	if !domain.IsValidation(err) {
		t.Fatalf("missing reference: got %v", err)
	}

	err = svc.Record(models.Booking{BookingReference: "UGR111111"})
	if !domain.IsValidation(err) {
		t.Fatalf("zero passengers: got %v", err)
	}
}

func TestBookingGetByReferenceNotFound(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("UGR999999").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetByReference("UGR999999")
	if !domain.IsNotFound(err) {
		t.Fatalf("got %v, want not found", err)
	}
}
