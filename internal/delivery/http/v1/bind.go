package v1

import (
	"encoding/json"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into v. On failure it pushes a 400
// naming the offending field when the decoder can tell which one it was.
func bindJSON(c *gin.Context, v any) bool {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return true
	}

	var tsErr *domain.TimestampError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &tsErr):
		c.Error(apperror.BadRequest("Invalid createdAt: expected an ISO-8601 timestamp or epoch milliseconds"))
	case errors.As(err, &typeErr) && typeErr.Field != "":
		c.Error(apperror.BadRequest("Invalid type for field: " + typeErr.Field))
	default:
		c.Error(apperror.BadRequest("Invalid JSON body"))
	}
	return false
}
