package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/models"
)

// AdminMiddleware exige papel ADMIN. O papel é relido do banco a cada
// chamada, nunca confiado apenas ao claim do token: rebaixar um admin
// vale imediatamente, sem esperar o token expirar.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get(ContextUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
			return
		}

		userID, ok := userIDVal.(uint)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
			return
		}

		var user models.User
		if err := db.Select("role").First(&user, userID).Error; err != nil {
			httperr.Unauthorized(c, "user_not_found", "Usuário não encontrado.")
			c.Abort()
			return
		}

		if models.Role(user.Role) != models.RoleAdmin {
			httperr.Forbidden(c, "admin_only", "Acesso restrito a administradores.")
			c.Abort()
			return
		}

		c.Next()
	}
}
