package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

type stationPayload struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// GET /api/stations
func GetStations(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, name, COALESCE(location, '') AS location
		FROM stations
		ORDER BY name ASC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stations: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.Station{}
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Location); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan station: " + err.Error()})
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

// POST /api/admin/stations
func CreateStation(c *gin.Context) {
	var payload stationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station name is required"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO stations (name, location, created_at) VALUES (?, ?, NOW())
	`, name, nullIfEmpty(payload.Location))
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "a station with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create station: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "station created", "id": id})
}

// PUT /api/admin/stations/:id
func UpdateStation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload stationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station name is required"})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE stations SET name = ?, location = ? WHERE id = ?
	`, name, nullIfEmpty(payload.Location), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update station: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "station updated"})
}

// DELETE /api/admin/stations/:id
func DeleteStation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM stations WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete station: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "station deleted"})
}

func nullIfEmpty(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
