package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns handler panics into a JSON 500 carrying a "detail"
// message, the shape the client reads error text from.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic serving %s %s request_id=%s: %v", c.Request.Method, c.Request.URL.Path, c.GetString("requestID"), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"detail": "internal server error",
		})
	})
}

// NotFound answers unknown routes with a JSON 404
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
}
