package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"anthromorph/internal/observability"
)

// NewHTTPHandler mounts the JSON-RPC surface and operational endpoints on
// a gin engine. Readiness follows taxonomy presence: the dispatcher can
// only exist over a loaded taxonomy, so /readyz is true once routing is
// up.
func NewHTTPHandler(dispatcher *Dispatcher, logger zerolog.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		observability.RequestID(),
		observability.RequestLogger(logger),
		observability.RequestMetrics(),
	)

	router.POST("/rpc", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusOK, errorResponse(nil, CodeParseError, "unreadable request body"))
			return
		}
		resp, reply := dispatcher.DispatchRaw(c.Request.Context(), body)
		if !reply {
			c.Status(http.StatusAccepted)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
