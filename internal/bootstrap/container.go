package bootstrap

import (
	"tech-innovations-be/internal/config"
	"tech-innovations-be/internal/controller"
	"tech-innovations-be/internal/pkg/logger"
	"tech-innovations-be/internal/repository/contract"
	"tech-innovations-be/internal/repository/implementation"
	"tech-innovations-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CatalogController controller.ICatalogController
	PageController    controller.IPageController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	repo := implementation.NewInnovationRepository(db)
	return newContainer(repo, cfg)
}

// NewContainerWithRepository lets tests assemble the full stack over an
// arbitrary repository (typically the in-memory one).
func NewContainerWithRepository(repo contract.InnovationRepository, cfg *config.Config) *Container {
	return newContainer(repo, cfg)
}

func newContainer(repo contract.InnovationRepository, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.InnovationViewedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.InnovationViewedTopic,
		repo,
		sysLogger,
	)
	catalogService := service.NewCatalogService(repo, publisherService, sysLogger)

	// 4. Controllers
	catalogController := controller.NewCatalogController(catalogService)
	pageController := controller.NewPageController(catalogService, cfg.App.PublicDir)

	return &Container{
		CatalogController: catalogController,
		PageController:    pageController,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
