package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go-jobboard-backend/pkg/etag"

	"github.com/gin-gonic/gin"
)

// MaxAgeKey is the gin context key holding the Cache-Control max-age, in
// seconds, for the current route.
const MaxAgeKey = "CacheMaxAge"

const DefaultMaxAge = 3600

// ErrorBody is the payload of every 4xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

// InternalErrorBody is the payload of a 500 response.
type InternalErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// JSON writes data with an ETag and Cache-Control header. A 200 whose tag
// matches If-None-Match is answered with 304 and no body.
func JSON(c *gin.Context, code int, data any) {
	body, err := encode(data)
	if err != nil {
		body, _ = encode(InternalErrorBody{Message: "Internal Error", Error: err.Error()})
		code = http.StatusInternalServerError
	}

	tag := etag.Generate(body)
	c.Header("ETag", tag)
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge(c)))

	if code == http.StatusOK && etag.Matches(c.GetHeader("If-None-Match"), tag) {
		c.Status(http.StatusNotModified)
		c.Writer.WriteHeaderNow()
		return
	}
	c.Data(code, "application/json; charset=utf-8", body)
}

// Error sends a {"error": message} response.
func Error(c *gin.Context, code int, message string) {
	JSON(c, code, ErrorBody{Error: message})
}

// InternalError sends a 500 with the underlying message.
func InternalError(c *gin.Context, message string) {
	JSON(c, http.StatusInternalServerError, InternalErrorBody{Message: "Internal Error", Error: message})
}

// encode matches JSON.stringify output, so HTML characters are not escaped
// and there is no trailing newline.
func encode(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func maxAge(c *gin.Context) int {
	if v, ok := c.Get(MaxAgeKey); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return DefaultMaxAge
}
