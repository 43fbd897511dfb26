package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/utils"
)

// AuthMiddleware validates the cashier token and puts the identity on the
// context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("cashier_id", claims.CashierID)
		c.Set("cashier_code", claims.Code)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireSupervisor gates void/comp and discount endpoints.
func RequireSupervisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != models.RoleSupervisor {
			utils.RespondError(c, http.StatusForbidden, errors.New("supervisor role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
