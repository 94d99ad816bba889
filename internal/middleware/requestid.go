// Package middleware carries the cross-cutting gin handlers.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header the request id travels on, inbound
// and outbound.
const HeaderRequestID = "X-Request-ID"

// requestIDKey is the gin context key the id is stored under.
const requestIDKey = "requestID"

// RequestID tags every request with an id so one judgment can be
// followed through the logs. An inbound X-Request-ID is honored,
// letting the kiosk controller correlate its own traces; otherwise a
// fresh uuid is issued. The id is attached to the context and echoed
// on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom returns the request id attached to the context, or
// "-" when the middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return "-"
}
