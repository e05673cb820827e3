package middleware

import (
	"log/slog"
	"net/http"

	"event-quote-sim/internal/handler/httperr"
	"event-quote-sim/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 8

// ErrorHandler logs the cause of server-side failures and writes a fallback
// body for handlers that recorded an error without answering.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			resp, ok := e.Meta.(httperr.Response)
			if ok && resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", e.Err.Error(),
				"stack", errs.ExtractStackLines(e.Err, stackLinesLogged),
			)
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil))
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				resp := httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil)
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
