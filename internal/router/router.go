package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/coursehive/config"
	"github.com/lshigami/coursehive/internal/controller"
	adminctrl "github.com/lshigami/coursehive/internal/controller/admin"
	userctrl "github.com/lshigami/coursehive/internal/controller/user"
	"github.com/lshigami/coursehive/internal/middleware"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.CORS.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(origins), // not allowed with a wildcard origin
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", controller.Health)

	return r
}

// RegisterRoutes mounts the admin API behind the admin token and the
// test-taker API behind the user token.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
) {
	adminAuth := middleware.Authenticate(middleware.RoleAdmin, middleware.NewTokenVerifier(cfg.JWT.AdminSecret))
	userAuth := middleware.Authenticate(middleware.RoleUser, middleware.NewTokenVerifier(cfg.JWT.UserSecret))

	adminAPIGroup := router.Group("/api/v1/admin", adminAuth)
	adminTestCtrl.RegisterRoutes(adminAPIGroup)

	userAPIGroup := router.Group("/api/v1", userAuth)
	userTestCtrl.RegisterRoutes(userAPIGroup)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
