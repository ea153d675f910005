package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sowraj28/GreenGrocerNew/auth"
)

// tokenFromRequest reads the realm's session cookie first, then falls back
// to a bearer Authorization header.
func tokenFromRequest(c *gin.Context, realm auth.Realm) string {
	if cookie, err := c.Cookie(auth.CookieFor(realm)); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireCustomer guards customer routes. On success the requesting user's
// ID is available as "user_id" in the context.
func RequireCustomer(c *gin.Context) {
	tokenString := tokenFromRequest(c, auth.RealmCustomer)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	userID, err := auth.ParseToken(auth.RealmCustomer, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

// RequireAdmin guards /admin routes. Customer tokens are rejected here; the
// admin realm signs with its own secret.
func RequireAdmin(c *gin.Context) {
	tokenString := tokenFromRequest(c, auth.RealmAdmin)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	adminID, err := auth.ParseToken(auth.RealmAdmin, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("admin_id", adminID)
	c.Next()
}
