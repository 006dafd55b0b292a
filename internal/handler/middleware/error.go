package middleware

import (
	"log/slog"
	"net/http"

	"premium-reconciler/internal/handler/httperr"
	"premium-reconciler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const errorStackLines = 8

// ErrorHandler renders errors that handlers attached with c.Error but did not
// write. Public errors keep their prepared response; anything else is
// classified by httperr.FromError.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logServerErrors(c)
		}
		if c.Writer.Written() {
			return
		}

		if last := c.Errors.Last(); last != nil {
			resp, ok := last.Meta.(httperr.Response)
			if !ok || !last.IsType(gin.ErrorTypePublic) {
				resp = httperr.FromError(last.Err, "Internal server error")
			}
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func logServerErrors(c *gin.Context) {
	for _, e := range c.Errors {
		resp, ok := e.Meta.(httperr.Response)
		if !ok {
			resp = httperr.FromError(e.Err, "")
		}
		if resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.Error("request failed",
			"path", c.FullPath(),
			"status", resp.Status,
			"error", e.Err,
			"stack", errs.ExtractStackLines(e.Err, errorStackLines),
		)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic", "error", rec, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Code = "PANIC"
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
