package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type routePayload struct {
	OriginID      int64  `json:"originId" binding:"required"`
	DestinationID int64  `json:"destinationId" binding:"required"`
	TrainID       int64  `json:"trainId" binding:"required"`
	DepartureTime string `json:"departureTime" binding:"required"`
	ArrivalTime   string `json:"arrivalTime" binding:"required"`
	Duration      string `json:"duration"`
	Price         int64  `json:"price"`
}

func (p routePayload) validate() string {
	if p.OriginID <= 0 || p.DestinationID <= 0 || p.TrainID <= 0 {
		return "origin, destination, and train are required"
	}
	if p.OriginID == p.DestinationID {
		return "origin and destination cannot be the same"
	}
	if strings.TrimSpace(p.DepartureTime) == "" || strings.TrimSpace(p.ArrivalTime) == "" {
		return "departure and arrival times are required"
	}
	if p.Price <= 0 {
		return "price must be a positive amount"
	}
	return ""
}

// GET /api/admin/routes
// Rows are joined against stations and trains; missing references render as
// "Unknown" rather than failing.
func GetAdminRoutes(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			r.id, r.origin_id, r.destination_id, r.train_id,
			r.departure_time, r.arrival_time, COALESCE(r.duration, '') AS duration, r.price,
			COALESCE(o.name, 'Unknown') AS origin_name,
			COALESCE(d.name, 'Unknown') AS destination_name,
			COALESCE(t.train_number, 'Unknown') AS train_number
		FROM routes r
		LEFT JOIN stations o ON o.id = r.origin_id
		LEFT JOIN stations d ON d.id = r.destination_id
		LEFT JOIN trains t ON t.id = r.train_id
		ORDER BY r.id DESC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch routes: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.Route{}
	for rows.Next() {
		var r models.Route
		if err := rows.Scan(
			&r.ID, &r.OriginID, &r.DestinationID, &r.TrainID,
			&r.DepartureTime, &r.ArrivalTime, &r.Duration, &r.Price,
			&r.OriginName, &r.DestinationName, &r.TrainNumber,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan route: " + err.Error()})
			return
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /api/admin/routes
func CreateRoute(c *gin.Context) {
	var payload routePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO routes (origin_id, destination_id, train_id, departure_time, arrival_time, duration, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`, payload.OriginID, payload.DestinationID, payload.TrainID,
		strings.TrimSpace(payload.DepartureTime), strings.TrimSpace(payload.ArrivalTime),
		nullIfEmpty(payload.Duration), payload.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create route: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "route created", "id": id})
}

// PUT /api/admin/routes/:id
func UpdateRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload routePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE routes
		SET origin_id = ?, destination_id = ?, train_id = ?, departure_time = ?, arrival_time = ?, duration = ?, price = ?
		WHERE id = ?
	`, payload.OriginID, payload.DestinationID, payload.TrainID,
		strings.TrimSpace(payload.DepartureTime), strings.TrimSpace(payload.ArrivalTime),
		nullIfEmpty(payload.Duration), payload.Price, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update route: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "route updated"})
}

// DELETE /api/admin/routes/:id
func DeleteRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM routes WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete route: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "route deleted"})
}
