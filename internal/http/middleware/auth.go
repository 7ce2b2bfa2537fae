package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user"

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret installs the signing key at startup.
func SetJWTSecret(secret string) {
	if strings.TrimSpace(secret) != "" {
		jwtSecret = []byte(secret)
	}
}

// AuthUser is the resolved session identity carried through the request
// context instead of any ambient global.
type AuthUser struct {
	ID      int64
	IsAdmin bool
}

// SignToken issues a 24h HS256 token for a user.
func SignToken(userID int64, isAdmin bool) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(jwtSecret)
}

func parseBearer(c *gin.Context) (AuthUser, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return AuthUser{}, false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return AuthUser{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AuthUser{}, false
	}
	uid, ok := claims["user_id"].(float64)
	if !ok {
		return AuthUser{}, false
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return AuthUser{ID: int64(uid), IsAdmin: isAdmin}, true
}

// AuthOptional resolves the bearer token when present but never rejects.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := parseBearer(c); ok {
			c.Set(authUserKey, user)
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid session token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := parseBearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(authUserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects requests without an admin session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := parseBearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privilege required"})
			return
		}
		c.Set(authUserKey, user)
		c.Next()
	}
}

// CurrentUser extracts the resolved identity from the gin context.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	if v, ok := c.Get(authUserKey); ok {
		if u, ok := v.(AuthUser); ok {
			return u, true
		}
	}
	return AuthUser{}, false
}
