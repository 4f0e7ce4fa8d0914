package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sekolah-dev/school-site-api/api/swagger"
	"github.com/sekolah-dev/school-site-api/internal/handler"
	"github.com/sekolah-dev/school-site-api/internal/middleware"
	"github.com/sekolah-dev/school-site-api/internal/repository"
	"github.com/sekolah-dev/school-site-api/internal/service"
	"github.com/sekolah-dev/school-site-api/pkg/cache"
	"github.com/sekolah-dev/school-site-api/pkg/config"
	"github.com/sekolah-dev/school-site-api/pkg/database"
	"github.com/sekolah-dev/school-site-api/pkg/logger"
	corsmiddleware "github.com/sekolah-dev/school-site-api/pkg/middleware/cors"
	reqidmiddleware "github.com/sekolah-dev/school-site-api/pkg/middleware/requestid"
)

// @title School Site API
// @version 1.0.0
// @description Public school website backend with an admin back office
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, news cache disabled", "error", err)
			redisClient = nil
		}
	}

	validate := service.NewValidator()

	programRepo := repository.NewProgramRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	eventRepo := repository.NewEventRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	alumniRepo := repository.NewAlumniRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	userRepo := repository.NewUserRepository(db)

	newsSvc := service.NewNewsService(newsRepo, nil, cfg.Cache.NewsTTL, validate, logr)
	if redisClient != nil {
		newsSvc = service.NewNewsService(newsRepo, redisClient, cfg.Cache.NewsTTL, validate, logr)
	}

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	metricsSvc := service.NewMetricsService()

	handlers := handler.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Programs:      handler.NewProgramHandler(service.NewProgramService(programRepo, validate, logr)),
		Departments:   handler.NewDepartmentHandler(service.NewDepartmentService(departmentRepo, validate, logr)),
		Events:        handler.NewEventHandler(service.NewEventService(eventRepo, validate, logr)),
		Achievements:  handler.NewAchievementHandler(service.NewAchievementService(achievementRepo, validate, logr)),
		News:          handler.NewNewsHandler(newsSvc),
		Alumni:        handler.NewAlumniHandler(service.NewAlumniService(alumniRepo, validate, logr)),
		Registrations: handler.NewRegistrationHandler(service.NewRegistrationService(registrationRepo, validate, logr)),
		Exports:       handler.NewExportHandler(service.NewExportService(registrationRepo, logr)),
		Metrics:       handler.NewMetricsHandler(metricsSvc),
		AuthService:   authSvc,
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, cfg.APIPrefix, handlers)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
