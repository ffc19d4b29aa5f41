// auth.go - JWT issuing and authentication middleware
//
// Authentication flow:
// 1. Extract JWT token from the Authorization header (the only accepted transport)
// 2. Validate token signature and expiration
// 3. Extract admin identity from token claims
// 4. Store identity in the Gin context for handlers

package middleware // Declares the package name

import ( // Import required packages
	"errors"   // For sentinel error checks
	"net/http" // HTTP status codes (401)
	"strings"  // String operations (for header parsing)
	"time"     // For token expiry

	"employee-backend/config" // Project config (for JWT secret and TTL)

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token signing and validation)
)

// Claims carried by every issued token.
type Claims struct {
	AdminID  uint   `json:"admin_id"` // ID of the authenticated admin
	Username string `json:"username"` // Username of the authenticated admin
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the given admin, valid for the configured TTL.
func GenerateToken(adminID uint, username string) (string, error) {
	cfg := config.Load()
	now := time.Now()
	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// AuthMiddleware - Returns a Gin middleware function for JWT authentication.
// Rejects the request with 401 before any handler runs when the token is
// missing, expired, or otherwise invalid.
func AuthMiddleware() gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token is missing",
			})
			return
		}

		// STEP 2: Parse and verify the JWT token
		tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		cfg := config.Load()                              // Load config for JWT secret
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil // Provide secret key for validation
		})
		if err != nil || !token.Valid {
			message := "Token is invalid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		// STEP 3: Store the verified identity in the context for handlers
		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)

		c.Next() // Continue to next handler (authentication successful)
	}
}
