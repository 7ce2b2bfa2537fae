package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
	"railbook/internal/utils"

	"github.com/gin-gonic/gin"
)

type schedulePayload struct {
	RouteID        int64  `json:"routeId" binding:"required"`
	Date           string `json:"date" binding:"required"`
	SeatsAvailable int    `json:"seatsAvailable"`
}

// GET /api/admin/schedules
func GetSchedules(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, route_id, DATE_FORMAT(date, '%Y-%m-%d') AS date, seats_available
		FROM schedules
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedules: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.Schedule{}
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(&s.ID, &s.RouteID, &s.Date, &s.SeatsAvailable); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan schedule: " + err.Error()})
			return
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// validateSchedulePayload checks date format and the capacity bound of the
// route's train. Runs before any write.
func validateSchedulePayload(payload schedulePayload) (string, bool) {
	if payload.RouteID <= 0 {
		return "a route is required", false
	}
	if _, err := utils.ParseDate(payload.Date); err != nil {
		return "date must be formatted YYYY-MM-DD", false
	}
	if payload.SeatsAvailable < 0 {
		return "seats available cannot be negative", false
	}

	var capacity int
	err := intconfig.DB.QueryRow(`
		SELECT t.capacity
		FROM routes r
		JOIN trains t ON t.id = r.train_id
		WHERE r.id = ?
	`, payload.RouteID).Scan(&capacity)
	if err == sql.ErrNoRows {
		return "route not found", false
	}
	if err != nil {
		return "failed to check train capacity: " + err.Error(), false
	}
	if payload.SeatsAvailable > capacity {
		return "seats available cannot exceed the train capacity of " + strconv.Itoa(capacity), false
	}
	return "", true
}

// POST /api/admin/schedules
func CreateSchedule(c *gin.Context) {
	var payload schedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}
	if msg, ok := validateSchedulePayload(payload); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO schedules (route_id, date, seats_available, created_at)
		VALUES (?, ?, ?, NOW())
	`, payload.RouteID, strings.TrimSpace(payload.Date), payload.SeatsAvailable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "schedule created", "id": id})
}

// PUT /api/admin/schedules/:id
func UpdateSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload schedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}
	if msg, ok := validateSchedulePayload(payload); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE schedules SET route_id = ?, date = ?, seats_available = ? WHERE id = ?
	`, payload.RouteID, strings.TrimSpace(payload.Date), payload.SeatsAvailable, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update schedule: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "schedule updated"})
}

// DELETE /api/admin/schedules/:id
func DeleteSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}
