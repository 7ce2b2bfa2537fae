package handlers

import (
	"database/sql"
	"errors"
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
	"golang.org/x/crypto/bcrypt"
)

type userPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	IsAdmin  bool   `json:"isAdmin"`
}

// GET /api/admin/users
func GetUsers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT u.id, u.email,
			COALESCE(p.full_name, '') AS full_name,
			COALESCE(p.phone, '') AS phone,
			COALESCE(p.avatar_url, '') AS avatar_url,
			COALESCE(p.is_admin, 0) AS is_admin
		FROM users u
		LEFT JOIN profiles p ON p.id = u.id
		ORDER BY u.id DESC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.AvatarURL, &p.IsAdmin); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan user: " + err.Error()})
			return
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /api/admin/users
func CreateUser(c *gin.Context) {
	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	if email == "" || !strings.Contains(email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}
	if len(payload.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO users (email, password_hash) VALUES (?, ?)
	`, email, string(hash))
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create identity: " + err.Error()})
		return
	}
	id, _ := res.LastInsertId()

	if _, err := intconfig.DB.Exec(`
		INSERT INTO profiles (id, full_name, phone, is_admin, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`, id, strings.TrimSpace(payload.FullName), strings.TrimSpace(payload.Phone), payload.IsAdmin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created", "id": id})
}

// PUT /api/admin/users/:id
func UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE profiles SET full_name = ?, phone = ?, is_admin = ?, updated_at = NOW() WHERE id = ?
	`, strings.TrimSpace(payload.FullName), strings.TrimSpace(payload.Phone), payload.IsAdmin, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

// DELETE /api/admin/users/:id
// The auth identity is removed first; the profile row is only touched once
// that succeeds. The two deletes are independent statements with no
// compensating rollback.
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	repo := repositories.UserRepo{}
	if err := repo.DeleteIdentity(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove auth identity: " + err.Error()})
		return
	}
	if err := repo.DeleteProfile(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity removed but profile delete failed: " + err.Error()})
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "users", "delete", "id="+strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
