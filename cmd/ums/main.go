package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tms/config"
	"github.com/lshigami/tms/docs/ums"
	"github.com/lshigami/tms/internal/controller/userinfo"
	"github.com/lshigami/tms/internal/logger"
	"github.com/lshigami/tms/internal/middleware"
	"github.com/lshigami/tms/internal/repository"
	"github.com/lshigami/tms/internal/server"
	"github.com/lshigami/tms/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

//go:generate swag init -g main.go -d ./,../../internal/controller/userinfo,../../internal/dto -o ../../docs/ums --instanceName ums

// @title User Management API
// @version 1.0
// @description User and realm role administration backed by Keycloak.
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
			repository.NewKeycloakClient,
			middleware.NewTokenVerifier,
			func(cfg *config.Config) *gin.Engine {
				return server.NewGinEngine(cfg, ums.SwaggerInfo)
			},
		),

		fx.Provide(repository.NewUserRepository),
		fx.Provide(service.NewUserAccessService),
		fx.Provide(userinfo.NewUserInfoController),

		fx.Invoke(logger.Configure),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userInfoCtrl *userinfo.UserInfoController,
) {
	server.Mount(router, userInfoCtrl)
	server.Start(lc, cfg, router, "ums")
}
