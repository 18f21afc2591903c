package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"mailcraft.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	teamHandler      *handlers.TeamHandler
	billingHandler   *handlers.BillingHandler
	subscribeHandler *handlers.SubscribeHandler
	contentHandler   *handlers.ContentHandler
	dashboardHandler *handlers.DashboardHandler
	authMiddleware   gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, X-Session-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "mailcraft-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/sign-out", d.authMiddleware, d.authHandler.SignOut)
		}

		// Public email-capture endpoint
		v1.POST("/subscribe", d.subscribeHandler.Subscribe)

		// Team routes (protected)
		team := v1.Group("/team")
		team.Use(d.authMiddleware)
		{
			team.GET("", d.teamHandler.GetTeam)
			team.POST("/invitations", d.teamHandler.InviteMember)
			team.GET("/invitations", d.teamHandler.ListInvitations)
			team.POST("/members/remove", d.teamHandler.RemoveMember)
			team.DELETE("/members/:id", d.teamHandler.DeleteMember)
			team.GET("/activity", d.teamHandler.ListActivity)
		}

		// Billing routes (protected)
		billing := v1.Group("/billing")
		billing.Use(d.authMiddleware)
		{
			billing.GET("/portal", d.billingHandler.Portal)
			billing.GET("/portal-url", d.billingHandler.PortalURL)
		}

		// Brand / content routes (protected)
		brands := v1.Group("/brands")
		brands.Use(d.authMiddleware)
		{
			brands.POST("", d.contentHandler.CreateBrand)
			brands.GET("", d.contentHandler.ListBrands)
			brands.PUT("/:id", d.contentHandler.UpdateBrand)
			brands.DELETE("/:id", d.contentHandler.DeleteBrand)
			brands.POST("/:id/products", d.contentHandler.CreateProduct)
			brands.GET("/:id/products", d.contentHandler.ListProducts)
			brands.POST("/:id/generations", d.contentHandler.CreateGeneration)
			brands.GET("/:id/generations", d.contentHandler.ListGenerations)
		}

		products := v1.Group("/products")
		products.Use(d.authMiddleware)
		{
			products.PUT("/:id", d.contentHandler.UpdateProduct)
			products.DELETE("/:id", d.contentHandler.DeleteProduct)
		}

		generations := v1.Group("/generations")
		generations.Use(d.authMiddleware)
		{
			generations.PUT("/:id/content", d.contentHandler.UpdateGenerationContent)
			generations.GET("/:id/versions", d.contentHandler.ListGenerationVersions)
		}

		// Dashboard routes (protected)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(d.authMiddleware)
		{
			dashboard.GET("/stats", d.dashboardHandler.Stats)
		}
	}
}
