package middleware

import (
	"errors"
	"net/http"

	"event-quote-sim/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var errUnsupportedMediaType = errors.New("unsupported media type")

// RequireJSON rejects request bodies that are not sent as application/json.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEJSON {
			httperr.AbortWithError(c, http.StatusUnsupportedMediaType, errUnsupportedMediaType, "Content-Type must be application/json", nil)
		}
	}
}
