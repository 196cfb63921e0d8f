package middleware

import (
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Bootstrap makes sure the schema and seed data exist before any handler
// runs. The usecase caches success, so this is a flag check after the first
// request.
func Bootstrap(uc domain.BootstrapUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := uc.Ensure(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}
