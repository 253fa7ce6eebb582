package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/coursehive/config"
	"github.com/lshigami/coursehive/database"
	_ "github.com/lshigami/coursehive/docs" // Swagger docs
	adminctrl "github.com/lshigami/coursehive/internal/controller/admin"
	userctrl "github.com/lshigami/coursehive/internal/controller/user"
	"github.com/lshigami/coursehive/internal/event"
	"github.com/lshigami/coursehive/internal/logger"
	"github.com/lshigami/coursehive/internal/router"
	"github.com/lshigami/coursehive/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// @title CourseHive Tests API
// @version 1.0
// @description Timed multiple-choice tests: authoring, attempts, grading and results.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.NopLogger,

		fx.Provide(
			config.NewConfig,
			database.NewStore,
			NewPublisher,
			router.NewGinEngine,
			service.SystemClock,
		),

		fx.Provide(
			service.NewScoreConverterService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewTestSubmissionService,
			service.NewAttemptService,
		),

		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
}

// NewPublisher connects to RabbitMQ when it is configured and falls back to
// logging events otherwise. A broker that is down at startup does not stop
// the service.
func NewPublisher(lc fx.Lifecycle, cfg *config.Config) event.Publisher {
	var publisher event.Publisher = event.LogPublisher{}
	if cfg.RabbitMQ.Enabled() {
		amqpPublisher, err := event.NewAMQPPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ unavailable, events will only be logged")
		} else {
			log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("Publishing events to RabbitMQ")
			publisher = amqpPublisher
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			publisher.Close()
			return nil
		},
	})
	return publisher
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	engine *gin.Engine,
	cfg *config.Config,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
) {
	router.RegisterRoutes(engine, cfg, adminTestCtrl, userTestCtrl)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CourseHive API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("Server ListenAndServe failed")
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
