package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"churn-backend/internal/cards"
	"churn-backend/internal/paths"
	"churn-backend/internal/recommendations"
	"churn-backend/internal/services/health"
	"churn-backend/internal/shared/config"
	"churn-backend/internal/shared/server/middleware"
	"churn-backend/internal/shared/server/respond"
	"churn-backend/internal/wallet"
)

// RouterDeps carries the handlers the router mounts. Bootstrap builds them;
// tests may substitute their own.
type RouterDeps struct {
	Config                config.Config
	Health                *health.Service
	CardsHandler          *cards.Handler
	WalletHandler         *wallet.Handler
	RecommendationHandler *recommendations.Handler
	PathsHandler          *paths.Handler
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
		middleware.Identity(deps.Config.Env),
		middleware.RateLimit(defaultRateLimits()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := map[string]bool{"ok": true}
		if deps.Health != nil {
			status = deps.Health.Status()
		}
		respond.JSON(c, http.StatusOK, status)
	})
	if deps.CardsHandler != nil {
		deps.CardsHandler.RegisterRoutes(api)
	}
	if deps.WalletHandler != nil {
		deps.WalletHandler.RegisterRoutes(api)
	}
	if deps.RecommendationHandler != nil {
		deps.RecommendationHandler.RegisterRoutes(api)
	}
	if deps.PathsHandler != nil {
		deps.PathsHandler.RegisterRoutes(api)
	}

	return r
}

// defaultRateLimits gives catalog and recommendation reads more headroom
// than history writes.
func defaultRateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: middleware.GroupDefault,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet {
				return middleware.GroupRead
			}
			return middleware.GroupDefault
		},
		Rules: map[string]middleware.RateLimitRule{
			middleware.GroupDefault: {Rate: 5, Burst: 20},
			middleware.GroupRead:    {Rate: 20, Burst: 60},
		},
	}
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
