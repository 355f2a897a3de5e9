package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/sirupsen/logrus"
)

// ErrorLogger logs the errors handlers attached with c.Error, and nothing else.
func ErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		fields := logrus.Fields(utils.LogFieldsFromContext(c.Request.Context()))
		fields["method"] = c.Request.Method
		fields["path"] = c.FullPath()
		fields["status"] = c.Writer.Status()
		entry := logger.WithFields(fields)
		if c.Writer.Status() >= 500 {
			entry.Error(c.Errors.String())
			return
		}
		entry.Warn(c.Errors.String())
	}
}
