// utils/auth.go
package utils

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminSessionCookie carries the signed admin session token. The admin gate
// is a single shared password; a successful login trades it for an HS256
// token so the raw secret never rides along on every request.
const AdminSessionCookie = "admin_session"

// CheckAdminPassword compares a submitted password against the configured
// secret. If the configured value is a bcrypt hash it is verified as one,
// otherwise the comparison is constant-time.
func CheckAdminPassword(candidate, configured string) bool {
	if configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(configured)) == 1
}

// GenerateAdminToken issues a signed admin session token.
func GenerateAdminToken(secret string, expiry time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("session secret not set")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(expiry).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ValidateAdminToken checks the signature and expiry of a session token.
func ValidateAdminToken(tokenString, secret string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}

// AdminAuthMiddleware gates the admin routes on a valid session cookie.
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(AdminSessionCookie)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin session required"})
			return
		}
		if err := ValidateAdminToken(cookie, secret); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin session"})
			return
		}
		c.Next()
	}
}
