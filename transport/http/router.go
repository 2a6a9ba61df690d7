package http

import (
	"github.com/gin-gonic/gin"
	"github.com/layer-3/gatecheck/ports"
	"github.com/layer-3/gatecheck/service"
)

// SetupRouter sets up the Gin router
func SetupRouter(checker *service.Checker, issuer ports.ClearanceIssuer) *gin.Engine {
	router := gin.Default()

	// Create handlers
	handlers := NewCaptchaHandlers(checker, issuer)

	router.GET("/healthz", handlers.Health)

	// Captcha routes
	captcha := router.Group("/captcha")
	{
		captcha.POST("/verify", handlers.Verify)
	}

	// Protected API routes
	api := router.Group("/api")
	api.Use(CaptchaGuard(checker, issuer))
	{
		api.GET("/status", handlers.Status)
	}

	return router
}
