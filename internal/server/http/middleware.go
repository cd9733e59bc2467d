package http

import (
	"net/http"
	"strings"

	"github.com/cmartinr/reservasalas/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// authRequired gates protected routes. A missing Authorization header is
// rejected with 401; a header that fails verification with 400. The token
// is accepted with or without the "Bearer " scheme prefix. On success the
// resolved user id is attached to the request context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Acceso denegado"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Token inválido"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id attached by authRequired.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
