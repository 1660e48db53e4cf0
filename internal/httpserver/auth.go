package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	customersvc "centrodrinks/internal/service/customer"
)

type ctxKey string

const uidCtxKey ctxKey = "uid"

// authMiddleware resolves the Bearer token to a customer uid and stores it
// on the request context.
func authMiddleware(auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		uid, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, customersvc.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), uidCtxKey, uid)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func uidFrom(c *gin.Context) string {
	uid, _ := c.Request.Context().Value(uidCtxKey).(string)
	return uid
}

func bearerToken(c *gin.Context) string {
	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	return token
}
