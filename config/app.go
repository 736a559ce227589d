package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"room-rental-app/changefeed"
	"room-rental-app/config/common"
	"room-rental-app/config/logger"
	"room-rental-app/handler"
	"room-rental-app/livequery"
	"room-rental-app/middleware"
	"room-rental-app/prometheus"
	"room-rental-app/repository"
	"room-rental-app/routes"
	"room-rental-app/security"
	"room-rental-app/storage"
	"room-rental-app/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	Feed   *changefeed.Feed
	Cache  *livequery.Cache
	Images *storage.ImageStore
	Common *common.Config
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := logrus.New()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)

	prometheus.InitMetrics(newConfig.GetMetricsPrefix())

	feed := changefeed.NewFeed(log)
	cache := livequery.NewCache(log)

	storageDir, storageURL := newConfig.GetStorageConfig()
	images, err := storage.NewImageStore(storageDir, storageURL, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open image store")
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// room images are public by URL once uploaded
	app.Static(storageURL, storageDir)

	App(&AppConfig{
		App:      app,
		Validate: newValidator,
		Logger:   log,
		DBConfig: newDB,
		JWT:      newJWT,
		Feed:     feed,
		Cache:    cache,
		Images:   images,
		Common:   newConfig,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newAccountRepository := repository.NewAccountRepository()
	newProfileRepository := repository.NewProfileRepository()
	newRoleRepository := repository.NewRoleRepository()
	newRoomRepository := repository.NewRoomRepository()
	newInquiryRepository := repository.NewInquiryRepository()

	newAuthUsecase := usecase.NewAuthUsecase(newAccountRepository, newRoleRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT, aC.Feed)
	newProfileUsecase := usecase.NewProfileUsecase(newProfileRepository, newRoleRepository, newAccountRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.Feed, aC.Cache)
	newRoomUsecase := usecase.NewRoomUsecase(newRoomRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.Feed, aC.Cache, aC.Images)
	newInquiryUsecase := usecase.NewInquiryUsecase(newInquiryRepository, newRoomRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.Feed, aC.Cache)

	newMiddleware := middleware.NewMiddleware(aC.Common, aC.JWT, aC.Logger, newProfileUsecase)
	aC.App.Use(newMiddleware.Metrics)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newProfileUsecase, aC.Logger)
	newRoomHandler := handler.NewRoomHandler(newRoomUsecase, aC.Logger)
	newInquiryHandler := handler.NewInquiryHandler(newInquiryUsecase, aC.Logger)

	feedHandler := handler.NewChangeFeedHandler(aC.Feed, aC.Logger)

	route := routes.ConfigRoute{
		App:            aC.App,
		Middleware:     newMiddleware,
		AuthHandler:    newAuthHandler,
		UserHandler:    newUserHandler,
		RoomHandler:    newRoomHandler,
		InquiryHandler: newInquiryHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(feedHandler)
}
