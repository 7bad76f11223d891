package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceIDMiddleware tags every request with a trace ID so log lines from the
// three services can be correlated. An inbound X-Trace-ID is reused when it
// parses as a UUID, which keeps the ID stable across service hops.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Writer.Header().Set(traceHeader, traceID)
		c.Next()
	}
}
