package routes

import (
	"net/http"
	"time"

	"civicreporter/config"
	"civicreporter/controllers"
	"civicreporter/middlewares"
	"civicreporter/photos"
	"civicreporter/reporter"

	"github.com/gin-gonic/gin"
)

// Dependencies are the long-lived objects the routes bind to.
type Dependencies struct {
	Config      config.Config
	Reporter    *reporter.Reporter
	Photos      *photos.Store
	RateCounter middlewares.Counter
}

// RateLimitWindow is the window ISSUE_RATE_LIMIT applies to.
const RateLimitWindow = 24 * time.Hour

// Setup registers every route on r.
func Setup(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	admin := middlewares.AdminOnly(deps.Reporter, cfg.Auth.JWTSecret)
	limiter := middlewares.IssueRateLimiter(deps.RateCounter, cfg.Redis.QueuePrefix, cfg.IssueRateLimit, RateLimitWindow)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	IssueRoutes(r, controllers.NewIssueController(deps.Reporter, deps.Photos), admin, limiter)
	EditRoutes(r, controllers.NewEditController(deps.Reporter), admin)
	AuthRoutes(r, controllers.NewAuthController(deps.Reporter, cfg.Auth, cfg.IsProduction()), admin)
	MapRoutes(r, controllers.NewMapController(deps.Reporter))
	PhotoRoutes(r, controllers.NewPhotoController(deps.Photos))
}
