package api

import (
	"net/http"
	"referralvip-backend/config"
	accountRoutes "referralvip-backend/internal/api/v1/account"
	adminAccount "referralvip-backend/internal/api/v1/admin/account"
	adminSlip "referralvip-backend/internal/api/v1/admin/slip"
	adminTransaction "referralvip-backend/internal/api/v1/admin/transaction"
	adminUpgrade "referralvip-backend/internal/api/v1/admin/upgrade"
	adminWithdrawal "referralvip-backend/internal/api/v1/admin/withdrawal"
	"referralvip-backend/internal/api/v1/auth"
	sessionRoutes "referralvip-backend/internal/api/v1/session"
	vipRoutes "referralvip-backend/internal/api/v1/vip"
	withdrawalRoutes "referralvip-backend/internal/api/v1/withdrawal"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS for the admin console frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Bot-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// API v1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		auth.RegisterRoutes(v1)

		// Bot-facing routes; only the chat transport holds the service token
		bot := v1.Group("/")
		bot.Use(middleware.BotAuthMiddleware(cfg))
		{
			accountRoutes.RegisterRoutes(bot, cfg)
			vipRoutes.RegisterRoutes(bot)
			withdrawalRoutes.RegisterRoutes(bot)
			sessionRoutes.RegisterRoutes(bot)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminAccount.RegisterRoutes(admin)
			adminSlip.RegisterRoutes(admin)
			adminUpgrade.RegisterRoutes(admin)
			adminWithdrawal.RegisterRoutes(admin)
			adminTransaction.RegisterRoutes(admin)
		}
	}

	return router, nil
}
