package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"checkout-orchestrator/internal/handler/httperr"
	"checkout-orchestrator/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const errorStackLines = 8

// ErrorHandler logs the cause behind every 5xx and renders the error envelope
// when a handler recorded an error without writing a response.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		resp, public := last.Meta.(httperr.Response)
		if !public {
			resp = httperr.Response{Status: http.StatusInternalServerError, Error: "Internal server error"}
		}

		if resp.Status >= http.StatusInternalServerError {
			logger.LogAttrs(c.Request.Context(), slog.LevelError, "request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.Int("status_code", resp.Status),
				slog.String("error", last.Err.Error()),
				slog.Any("stack", errs.ExtractStackLines(last.Err, errorStackLines)),
			)
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(resp.Status, resp)
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.LogAttrs(c.Request.Context(), slog.LevelError, "recovered from panic",
					slog.Any("panic", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
