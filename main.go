package main

import (
	"log"
	"referralvip-backend/config"
	"referralvip-backend/internal/api"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/events"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/pricing"
	"referralvip-backend/internal/services"
	"referralvip-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set; it signs admin tokens and keys the transaction ledger hashes")
	}
	services.SetLedgerSecret(cfg.JWTSecret)

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	pricing.Apply(pricing.Overrides{
		VIPCosts:            cfg.VIPCosts,
		CommissionRates:     cfg.CommissionRates,
		WithdrawalFee:       cfg.WithdrawalFee,
		MinWithdrawalAmount: cfg.MinWithdrawalAmount,
	})

	if cfg.AMQPURL != "" {
		publisher, err := events.NewRabbitMQPublisher(cfg.AMQPURL, cfg.EventExchange)
		if err != nil {
			log.Fatalf("failed to connect to AMQP broker: %v", err)
		}
		defer publisher.Close()
		events.Default = publisher
	}

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.Account{},
		&models.UpgradeRecord{},
		&models.Withdrawal{},
		&models.Transaction{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	initAdminUser()

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func initAdminUser() {
	adminUsername := "admin@admin.com"
	adminPassword := "ChangeMe1234"

	var admin models.AdminUser
	result := database.DB.Where("username = ?", adminUsername).First(&admin)

	if result.Error != nil {
		if result.Error.Error() == "record not found" {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("failed to hash admin password: %v", err)
			}

			admin = models.AdminUser{
				Username: adminUsername,
				Password: string(hashedPassword),
				Role:     "admin",
			}

			if err := database.DB.Create(&admin).Error; err != nil {
				log.Fatalf("failed to create admin user: %v", err)
			}
			log.Println("Admin user created successfully!")
		} else {
			log.Fatalf("failed to check for admin user: %v", result.Error)
		}
	} else {
		log.Println("Admin user already exists.")
	}
}
