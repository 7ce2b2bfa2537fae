package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestCreateScheduleRejectsSeatsAboveCapacity(t *testing.T) {
	mock := newHandlerTest(t)

	mock.ExpectQuery("SELECT t.capacity").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(48))

	w, c := jsonRequest(t, http.MethodPost, "/api/admin/schedules", gin.H{
		"routeId":        int64(2),
		"date":           "2026-09-20",
		"seatsAvailable": 100,
	})
	CreateSchedule(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "capacity") {
		t.Fatalf("body = %s", w.Body.String())
	}
	// Only the capacity lookup may have hit the database.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}

func TestCreateScheduleRejectsBadDate(t *testing.T) {
	mock := newHandlerTest(t)

	w, c := jsonRequest(t, http.MethodPost, "/api/admin/schedules", gin.H{
		"routeId":        int64(2),
		"date":           "20-09-2026",
		"seatsAvailable": 30,
	})
	CreateSchedule(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}

func TestCreateScheduleInsertsWithinCapacity(t *testing.T) {
	mock := newHandlerTest(t)

	mock.ExpectQuery("SELECT t.capacity").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(48))
	mock.ExpectExec("INSERT INTO schedules").
		WillReturnResult(sqlmock.NewResult(9, 1))

	w, c := jsonRequest(t, http.MethodPost, "/api/admin/schedules", gin.H{
		"routeId":        int64(2),
		"date":           "2026-09-20",
		"seatsAvailable": 40,
	})
	CreateSchedule(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
