package http

import (
	"github.com/gin-gonic/gin"

	"github.com/recipevault/recipevault/internal/auth"
	"github.com/recipevault/recipevault/internal/database"
)

// RouterConfig carries the router's dependencies, keeping construction
// testable and the parameter list flat.
type RouterConfig struct {
	DB           *database.Database
	AuthService  *auth.Service
	TokenManager *auth.TokenManager
	Version      string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.DB, cfg.Version)
	router.GET("/health", healthController.Status)

	usersController := NewUsersController(cfg.AuthService)
	authController := NewAuthController(cfg.AuthService, cfg.TokenManager)

	router.POST("/api/users", usersController.Signup)
	router.POST("/api/auth/login", authController.Login)

	// Everything past this gate requires a valid bearer token; the
	// identity handlers act on comes from the token claim alone.
	middleware := auth.NewMiddleware(cfg.TokenManager)
	protected := router.Group("/api", middleware.RequireBearer())
	protected.POST("/auth/refresh", authController.Refresh)
	protected.GET("/users/me", usersController.Me)
	protected.PUT("/users/password", usersController.ChangePassword)

	return router
}
