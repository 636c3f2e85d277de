package api

import (
	"Socialens/internal/api/middleware"
	"Socialens/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signin", group.UserHandler.SignIn)

			sessionGroup := authGroup.Group("")
			sessionGroup.Use(middleware.AuthMiddleware())
			{
				sessionGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/user")
		{
			userGroup.Use(middleware.AuthMiddleware())
			{
				userGroup.GET("/info", group.UserHandler.GetUserInfo)
				userGroup.PUT("/info", group.UserHandler.UpdateUserInfo)
			}
		}

		keysGroup := apiGroup.Group("/keys")
		{
			keysGroup.Use(middleware.AuthMiddleware())
			{
				keysGroup.GET("", group.ApiKeyHandler.GetApiKeys)
				keysGroup.POST("", group.ApiKeyHandler.SaveApiKeys)
				keysGroup.PUT("", group.ApiKeyHandler.UpdateApiKeys)
			}
		}

		subscriptionGroup := apiGroup.Group("/subscription")
		{
			subscriptionGroup.Use(middleware.AuthMiddleware())
			{
				subscriptionGroup.GET("", group.SubscriptionHandler.GetSubscription)
				subscriptionGroup.POST("/activate", group.SubscriptionHandler.Activate)
				subscriptionGroup.POST("/cancel", group.SubscriptionHandler.Cancel)
			}
		}

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.Use(middleware.AuthMiddleware())
			{
				statsGroup.GET("", group.StatsHandler.GetAllPlatformStats)
				statsGroup.GET("/:platform", group.StatsHandler.GetPlatformStats)
			}
		}

		postsGroup := apiGroup.Group("/posts")
		{
			postsGroup.Use(middleware.AuthMiddleware())
			{
				postsGroup.GET("", group.StatsHandler.GetPosts)
			}
		}
	}

	return r
}
