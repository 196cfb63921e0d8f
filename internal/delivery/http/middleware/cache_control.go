package middleware

import (
	"go-jobboard-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// CachePolicy maps a request path to a Cache-Control max-age in seconds.
type CachePolicy func(path string) int

// ListPolicy uses listMaxAge for the frequently changing list endpoints and
// defaultMaxAge everywhere else.
func ListPolicy(listMaxAge, defaultMaxAge int) CachePolicy {
	return func(path string) int {
		switch path {
		case "/jobs", "/messages":
			return listMaxAge
		default:
			return defaultMaxAge
		}
	}
}

func CacheControl(policy CachePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(response.MaxAgeKey, policy(c.Request.URL.Path))
		c.Next()
	}
}
