package bootstrap

import (
	"log"

	"feature-prefs-be/internal/config"
	"feature-prefs-be/internal/controller"
	"feature-prefs-be/internal/pkg/logger"
	"feature-prefs-be/internal/repository/unitofwork"
	"feature-prefs-be/internal/service"

	pktNats "feature-prefs-be/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	AuthController    controller.IAuthController
	FeatureController controller.IFeatureController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Services
	authService := service.NewAuthService(uowFactory, natsPub)
	featureService := service.NewFeatureService(uowFactory, sysLogger, natsPub)

	// 4. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		FeatureController: controller.NewFeatureController(featureService),
		Logger:            sysLogger,
	}
}
