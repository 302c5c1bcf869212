// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid" // For parsing UUID from claim
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID"    // Key to store user ID in context
	roleCtx             = "userRole"  // Key to store role in context
	tokenCtx            = "authToken" // Key to store the raw token in context
)

// sessionClaims carries the role claim alongside the registered set.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. A token
// must both verify and still be present in the user's active-token list, so
// logout invalidates it immediately.
func JWTAuthMiddleware(jwtSecret string, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, userID, role, ok := authenticate(c, jwtSecret, users)
		if !ok {
			return
		}

		c.Set(userCtx, userID)
		c.Set(roleCtx, role)
		c.Set(tokenCtx, tokenString)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware resolves the caller identity when a valid token
// is presented but lets anonymous requests through. Invalid or revoked
// tokens are treated as anonymous rather than rejected.
func OptionalJWTAuthMiddleware(jwtSecret string, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(authorizationHeader) == "" {
			c.Next()
			return
		}

		tokenString, userID, role, err := parseAndCheck(c, jwtSecret, users)
		if err != nil {
			log.Printf("Auth middleware: Ignoring invalid optional token: %v", err)
			c.Next()
			return
		}

		c.Set(userCtx, userID)
		c.Set(roleCtx, role)
		c.Set(tokenCtx, tokenString)
		c.Next()
	}
}

// authenticate enforces the full check and writes the 401 itself on failure.
func authenticate(c *gin.Context, jwtSecret string, users services.UserService) (string, uuid.UUID, models.UserRole, bool) {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader == "" {
		log.Println("Auth middleware: Authorization header missing")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return "", uuid.Nil, "", false
	}

	tokenString, userID, role, err := parseAndCheck(c, jwtSecret, users)
	if err != nil {
		log.Printf("Auth middleware: %v", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
		} else {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		}
		return "", uuid.Nil, "", false
	}
	return tokenString, userID, role, true
}

// parseAndCheck verifies the bearer token's signature and claims, then
// confirms it is still in the active list.
func parseAndCheck(c *gin.Context, jwtSecret string, users services.UserService) (string, uuid.UUID, models.UserRole, error) {
	authHeader := c.GetHeader(authorizationHeader)
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return "", uuid.Nil, "", errors.New("invalid Authorization header format")
	}
	tokenString := headerParts[1]

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return "", uuid.Nil, "", fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", uuid.Nil, "", errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", uuid.Nil, "", fmt.Errorf("invalid user identifier in token subject %q: %w", claims.Subject, err)
	}

	active, err := users.IsTokenActive(c.Request.Context(), userID, tokenString)
	if err != nil {
		return "", uuid.Nil, "", fmt.Errorf("error checking token state: %w", err)
	}
	if !active {
		return "", uuid.Nil, "", errors.New("token has been logged out")
	}

	return tokenString, userID, models.UserRole(claims.Role), nil
}

// RequireRole gates a route group to one role. It assumes JWTAuthMiddleware
// already ran.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, err := GetUserRoleFromContext(c)
		if err != nil || got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates a route group to posters.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireUser gates a route group to applicants.
func RequireUser() gin.HandlerFunc {
	return RequireRole(models.RoleUser)
}

// Helper function to get user ID from context (optional but convenient)
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetUserRoleFromContext returns the authenticated caller's role.
func GetUserRoleFromContext(c *gin.Context) (models.UserRole, error) {
	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return "", errors.New("role not found in context")
	}

	role, ok := roleAny.(models.UserRole)
	if !ok {
		return "", errors.New("role in context is of invalid type")
	}

	return role, nil
}

// GetTokenFromContext returns the raw bearer token of the request.
func GetTokenFromContext(c *gin.Context) (string, error) {
	tokenAny, exists := c.Get(tokenCtx)
	if !exists {
		return "", errors.New("token not found in context")
	}

	token, ok := tokenAny.(string)
	if !ok {
		return "", errors.New("token in context is of invalid type")
	}

	return token, nil
}
