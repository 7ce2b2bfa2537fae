package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestDeleteUserRemovesIdentityThenProfile(t *testing.T) {
	mock := newHandlerTest(t)
	mock.MatchExpectationsInOrder(true)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM profiles").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w, c := jsonRequest(t, http.MethodDelete, "/api/admin/users/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	DeleteUser(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteUserStopsWhenIdentityDeleteFails(t *testing.T) {
	mock := newHandlerTest(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnError(fmt.Errorf("connection reset"))

	w, c := jsonRequest(t, http.MethodDelete, "/api/admin/users/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	DeleteUser(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "failed to remove auth identity") {
		t.Fatalf("body = %s", w.Body.String())
	}
	// The profile delete must not have run.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}

func TestDeleteUserUnknownIDIsNotFound(t *testing.T) {
	mock := newHandlerTest(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w, c := jsonRequest(t, http.MethodDelete, "/api/admin/users/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	DeleteUser(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	mock := newHandlerTest(t)

	w, c := jsonRequest(t, http.MethodPost, "/api/admin/users", gin.H{
		"email":    "rider@example.com",
		"password": "abc",
		"fullName": "Test Rider",
	})
	CreateUser(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}
