package server

import (
	"github.com/gin-gonic/gin"

	"github.com/RevanthDadi9/analyzer/internal/shared/config"
	"github.com/RevanthDadi9/analyzer/internal/shared/metrics"
	"github.com/RevanthDadi9/analyzer/internal/shared/server/middleware"
	"github.com/RevanthDadi9/analyzer/internal/shared/server/respond"
	"github.com/RevanthDadi9/analyzer/internal/uploads"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	UploadsHandler *uploads.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	deps.UploadsHandler.RegisterRoutes(r)

	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
