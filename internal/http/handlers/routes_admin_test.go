package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "railbook/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

// newHandlerTest swaps the shared DB handle for a sqlmock and restores it on
// cleanup.
func newHandlerTest(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		db.Close()
	})
	mock.MatchExpectationsInOrder(false)
	return mock
}

func jsonRequest(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return w, c
}

func TestCreateRouteRejectsSameOriginAndDestination(t *testing.T) {
	mock := newHandlerTest(t)

	w, c := jsonRequest(t, http.MethodPost, "/api/admin/routes", gin.H{
		"originId":      int64(3),
		"destinationId": int64(3),
		"trainId":       int64(1),
		"departureTime": "09:00",
		"arrivalTime":   "11:30",
		"price":         int64(35000),
	})
	CreateRoute(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "origin and destination cannot be the same") {
		t.Fatalf("body = %s", w.Body.String())
	}
	// No SQL may run for a payload rejected by validation.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}

func TestCreateRouteInsertsValidPayload(t *testing.T) {
	mock := newHandlerTest(t)

	mock.ExpectExec("INSERT INTO routes").
		WillReturnResult(sqlmock.NewResult(12, 1))

	w, c := jsonRequest(t, http.MethodPost, "/api/admin/routes", gin.H{
		"originId":      int64(3),
		"destinationId": int64(5),
		"trainId":       int64(1),
		"departureTime": "09:00",
		"arrivalTime":   "11:30",
		"duration":      "2h 30m",
		"price":         int64(35000),
	})
	CreateRoute(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateRouteRejectsMissingPrice(t *testing.T) {
	mock := newHandlerTest(t)

	w, c := jsonRequest(t, http.MethodPut, "/api/admin/routes/4", gin.H{
		"originId":      int64(3),
		"destinationId": int64(5),
		"trainId":       int64(1),
		"departureTime": "09:00",
		"arrivalTime":   "11:30",
	})
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	UpdateRoute(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}
