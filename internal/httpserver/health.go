package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": srv.name,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// readyCheck also reports which optional routes are wired.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"service": srv.name,
		"chat":    srv.chat != nil,
		"images":  srv.images != nil,
		"time":    time.Now().Format(time.RFC3339),
	})
}
