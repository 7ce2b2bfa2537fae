package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGenerateCatalogWritesFullLayout(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	for _, coach := range []string{"A", "B"} {
		for row := 1; row <= 6; row++ {
			for _, letter := range []string{"A", "B", "C", "D"} {
				seatType := "aisle"
				position := "left"
				if letter == "A" || letter == "D" {
					seatType = "window"
				}
				if letter == "C" || letter == "D" {
					position = "right"
				}
				if row == 1 && seatType == "window" {
					seatType = "priority"
				}
				number := string(rune('0'+row)) + letter
				mock.ExpectExec("INSERT INTO seats").
					WithArgs(int64(5), coach, number, seatType, position).
					WillReturnResult(sqlmock.NewResult(1, 1))
			}
		}
	}

	repo := SeatRepo{DB: db}
	inserted, err := repo.GenerateCatalog(5)
	if err != nil {
		t.Fatalf("generate catalog: %v", err)
	}
	if inserted != 48 {
		t.Fatalf("inserted = %d, want 48", inserted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGenerateCatalogStopsOnFirstError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO seats").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO seats").
		WillReturnError(errNoDB)

	repo := SeatRepo{DB: db}
	inserted, err := repo.GenerateCatalog(5)
	if err == nil {
		t.Fatal("expected error")
	}
	if inserted != 1 {
		t.Fatalf("inserted = %d, want 1", inserted)
	}
}
