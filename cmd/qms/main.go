package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tms/config"
	"github.com/lshigami/tms/database"
	"github.com/lshigami/tms/docs/qms"
	"github.com/lshigami/tms/internal/controller/quiz"
	"github.com/lshigami/tms/internal/logger"
	"github.com/lshigami/tms/internal/model"
	"github.com/lshigami/tms/internal/repository"
	"github.com/lshigami/tms/internal/server"
	"github.com/lshigami/tms/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:generate swag init -g main.go -d ./,../../internal/controller/quiz,../../internal/dto -o ../../docs/qms --instanceName qms

// @title Question Management API
// @version 1.0
// @description Categories, languages and questions of the question bank.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(appOptions())

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	if err := app.Stop(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to stop application")
	}
}

// appOptions is the dependency graph of the service.
func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			func(cfg *config.Config) *gin.Engine {
				return server.NewGinEngine(cfg, qms.SwaggerInfo)
			},
		),

		fx.Provide(
			repository.NewCategoryRepository,
			repository.NewLanguageRepository,
			repository.NewQuestionRepository,
		),

		fx.Provide(
			service.NewCategoryService,
			service.NewLanguageService,
			service.NewQuestionService,
		),

		fx.Provide(
			quiz.NewCategoryController,
			quiz.NewLanguageController,
			quiz.NewQuestionController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	categoryCtrl *quiz.CategoryController,
	languageCtrl *quiz.LanguageController,
	questionCtrl *quiz.QuestionController,
) {
	server.Mount(router, categoryCtrl, languageCtrl, questionCtrl)
	server.Start(lc, cfg, router, "qms")
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Language{}, &model.Category{}, &model.Question{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
