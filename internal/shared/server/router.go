package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vastu-backend/internal/analyses"
	"vastu-backend/internal/bookings"
	"vastu-backend/internal/services/health"
	"vastu-backend/internal/shared/config"
	"vastu-backend/internal/shared/server/middleware"
	"vastu-backend/internal/uploads"
)

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config   config.Config
	Analyses *analyses.Handler
	Bookings *bookings.Handler
	Uploads  *uploads.Handler
	Health   *health.Service
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
		middleware.Identity(),
	)

	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Health.Status(c.Request.Context()))
	})

	if deps.Analyses != nil {
		deps.Analyses.RegisterRoutes(api)
	}
	if deps.Bookings != nil {
		deps.Bookings.RegisterRoutes(api)
	}
	if deps.Uploads != nil {
		deps.Uploads.RegisterRoutes(api)
	}

	return r
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
