package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/takaex/takaex/internal/server/http/handlers"
	"github.com/takaex/takaex/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ExchangeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	rateHandler := handlers.NewRateHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	sessionHandler := handlers.NewSessionHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/otp/verify", authHandler.VerifyOTP)
	auth.POST("/logout", authHandler.Logout)

	api.GET("/rates", rateHandler.Rates)
	api.GET("/rates/quote", rateHandler.Quote)

	session := api.Group("/session")
	session.Use(middleware.OptionalAuth(facade))
	session.GET("", sessionHandler.State)
	session.POST("/navigate", sessionHandler.Navigate)

	private := api.Group("")
	private.Use(middleware.AuthRequired(facade))
	private.POST("/orders", orderHandler.Submit)
	private.GET("/orders", orderHandler.List)
	private.GET("/orders/:id", orderHandler.Get)
	private.GET("/notifications", notificationHandler.List)
	private.DELETE("/notifications", notificationHandler.Clear)
	private.GET("/profile", profileHandler.Get)
	private.PUT("/profile", profileHandler.Update)
	private.POST("/profile/password", profileHandler.ChangePassword)

	return engine
}
