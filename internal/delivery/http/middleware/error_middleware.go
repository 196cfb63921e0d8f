package middleware

import (
	"errors"
	"fmt"
	"log/slog"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler pushed with c.Error.
// Classified errors keep their status and message; anything else is a 500
// carrying the error text.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		message := err.Error()
		if appErr != nil && appErr.Err != nil {
			message = appErr.Err.Error()
		}
		logger.Error("Internal server error",
			"error", message,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
		)
		response.InternalError(c, message)
	}
}

// Recovery turns a panic into the same 500 body ErrorHandler produces.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		message := fmt.Sprint(recovered)
		logger.Error("Recovered from panic",
			"panic", message,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
		)
		response.InternalError(c, message)
		c.Abort()
	})
}
