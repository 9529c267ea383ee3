package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/shared/middleware"
	"microblog-backend/internal/shared/response"
	"microblog-backend/pkg/container"
)

// SetupRouter wires the route table. Listing and detail pages are
// public; create and edit go through the access guard inside the
// handlers, so no route-level auth middleware aborts them.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ResolveIdentity(c.JWTManager, c.Config.Auth.CookieName),
	)

	// ========================================
	// PAGES
	// ========================================
	router.GET("/", c.PostHandler.Index)
	router.GET("/group/:slug/", c.PostHandler.GroupPosts)
	router.GET("/profile/:username/", c.PostHandler.Profile)
	router.GET("/posts/:id/", c.PostHandler.PostDetail)

	router.GET("/create/", c.PostHandler.CreateForm)
	router.POST("/create/", c.PostHandler.Create)
	router.GET("/posts/:id/edit/", c.PostHandler.EditForm)
	router.POST("/posts/:id/edit/", c.PostHandler.Edit)

	router.GET("/groups/", c.GroupHandler.List)

	// ========================================
	// AUTH
	// ========================================
	auth := router.Group("/auth")
	{
		auth.POST("/signup/", c.UserHandler.Signup)
		auth.GET("/login/", c.UserHandler.LoginForm)
		auth.POST("/login/", c.UserHandler.Login)
		auth.POST("/logout/", c.UserHandler.Logout)
	}

	// ========================================
	// OPS
	// ========================================
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	// Unknown paths are plain 404s
	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Page not found")
	})

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis being down only degrades caching, never the page flow
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, health)
	}
}
