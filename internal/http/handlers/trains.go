package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/repositories"
	"railbook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

type trainPayload struct {
	TrainNumber string `json:"trainNumber" binding:"required"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
}

// GET /api/trains
func GetTrains(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, train_number, COALESCE(name, '') AS name, capacity
		FROM trains
		ORDER BY train_number ASC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trains: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.Train{}
	for rows.Next() {
		var t models.Train
		if err := rows.Scan(&t.ID, &t.TrainNumber, &t.Name, &t.Capacity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan train: " + err.Error()})
			return
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /api/admin/trains
func CreateTrain(c *gin.Context) {
	var payload trainPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}

	trainNumber := strings.TrimSpace(payload.TrainNumber)
	if trainNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "train number is required"})
		return
	}
	if payload.Capacity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "capacity must be a positive number"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO trains (train_number, name, capacity, created_at) VALUES (?, ?, ?, NOW())
	`, trainNumber, nullIfEmpty(payload.Name), payload.Capacity)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "a train with this number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create train: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "train created", "id": id})
}

// PUT /api/admin/trains/:id
func UpdateTrain(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload trainPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}

	trainNumber := strings.TrimSpace(payload.TrainNumber)
	if trainNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "train number is required"})
		return
	}
	if payload.Capacity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "capacity must be a positive number"})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE trains SET train_number = ?, name = ?, capacity = ? WHERE id = ?
	`, trainNumber, nullIfEmpty(payload.Name), payload.Capacity, id)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "a train with this number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update train: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "train not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "train updated"})
}

// DELETE /api/admin/trains/:id
func DeleteTrain(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM trains WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete train: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "train not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "train deleted"})
}

// POST /api/admin/trains/:id/seats
// Generates the persisted 48-seat catalog for a train and seeds availability
// rows for its schedules.
func GenerateTrainSeats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var trainNumber string
	if err := intconfig.DB.QueryRow(`SELECT train_number FROM trains WHERE id = ?`, id).Scan(&trainNumber); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "train not found"})
		return
	}

	repo := repositories.SeatRepo{}
	existing, err := repo.CountByTrain(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check existing seats: " + err.Error()})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "train already has a seat catalog; delete it first"})
		return
	}

	inserted, err := repo.GenerateCatalog(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate seats: " + err.Error()})
		return
	}

	seeded, err := repo.SeedAvailability(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed seat availability: " + err.Error()})
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "trains", "generate_seats",
		"train="+trainNumber+" seats="+strconv.Itoa(inserted))

	c.JSON(http.StatusCreated, gin.H{
		"message":           "seat catalog generated",
		"seats":             inserted,
		"availability_rows": seeded,
	})
}
