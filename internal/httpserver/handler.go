package httpserver

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/chat"
	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(gin.Recovery(), srv.requestLogger())

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := srv.gin.Group("/v1")
	v1.POST("/fulfillment", srv.fulfill)
	v1.POST("/chat", srv.sendChat)
	v1.GET("/images", srv.listImages)
}

func (srv *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		srv.l.Debug("http request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).Milliseconds(),
		})
	}
}

// fulfill accepts the same event Lex sends to a Lambda code hook.
func (srv *HTTPServer) fulfill(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apperrors.NewInvalidEventError(err.Error()))
		return
	}

	event, err := validation.DecodeEvent(raw)
	if err != nil {
		srv.l.Warn("rejected fulfillment event", map[string]interface{}{"error": apperrors.MessageOf(err)})
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, srv.router.Route(c.Request.Context(), event))
}

func (srv *HTTPServer) sendChat(c *gin.Context) {
	if srv.chat == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "chat relay is not configured"})
		return
	}

	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := srv.chat.Send(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyText) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
			return
		}
		abortWithError(c, http.StatusBadGateway, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (srv *HTTPServer) listImages(c *gin.Context) {
	if srv.images == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "image gallery is not configured"})
		return
	}

	sections, err := srv.images.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusBadGateway, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func abortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    apperrors.CodeOf(err),
			"message": apperrors.MessageOf(err),
		},
	})
}
