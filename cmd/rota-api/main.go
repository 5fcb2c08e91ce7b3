package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/openrota/rota-api/api/swagger"
	"github.com/openrota/rota-api/internal/handler"
	"github.com/openrota/rota-api/internal/middleware"
	"github.com/openrota/rota-api/internal/repository"
	"github.com/openrota/rota-api/internal/service"
	"github.com/openrota/rota-api/pkg/cache"
	"github.com/openrota/rota-api/pkg/config"
	"github.com/openrota/rota-api/pkg/database"
	"github.com/openrota/rota-api/pkg/logger"
	corsmiddleware "github.com/openrota/rota-api/pkg/middleware/cors"
	reqidmiddleware "github.com/openrota/rota-api/pkg/middleware/requestid"
)

// @title Rota API
// @version 1.0.0
// @description Shift assignment engine: rosters, batch auto-assignment, swap requests, audit trail
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	// Redis is optional: the API degrades to uncached reads when it is down.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, roster caching disabled", zap.Error(err))
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Roster.CacheTTL, logr, cfg.Roster.CacheEnabled && redisClient != nil)
	defer cacheRepo.Close() //nolint:errcheck

	employeeRepo := repository.NewEmployeeRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	swapRepo := repository.NewSwapRepository(db)

	authSvc := service.NewAuthService(employeeRepo, cfg.JWT, logr)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	shiftSvc := service.NewShiftService(shiftRepo)
	availabilitySvc := service.NewAvailabilityService(availabilityRepo)
	leaveSvc := service.NewLeaveService(leaveRepo)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, leaveRepo, auditRepo, db, cacheSvc, metricsSvc, logr)
	schedulerSvc := service.NewSchedulerService(availabilityRepo, assignmentSvc, cfg.Scheduler, metricsSvc, logr)
	swapSvc := service.NewSwapService(swapRepo, assignmentSvc, db, cacheSvc, metricsSvc, logr)
	rosterSvc := service.NewRosterService(assignmentRepo, availabilityRepo, cacheSvc, cfg.Roster.CacheTTL, logr)
	auditSvc := service.NewAuditService(auditRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	employeeHandler := handler.NewEmployeeHandler(employeeSvc)
	shiftHandler := handler.NewShiftHandler(shiftSvc)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	leaveHandler := handler.NewLeaveHandler(leaveSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)
	schedulerHandler := handler.NewSchedulerHandler(schedulerSvc)
	swapHandler := handler.NewSwapHandler(swapSvc)
	rosterHandler := handler.NewRosterHandler(rosterSvc)
	auditHandler := handler.NewAuditHandler(auditSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))
	{
		authed.GET("/employees", employeeHandler.List)
		authed.GET("/employees/:id", employeeHandler.Get)
		authed.POST("/employees", middleware.RequireAdmin(), employeeHandler.Create)

		authed.GET("/shifts", shiftHandler.List)
		authed.GET("/shifts/:id", shiftHandler.Get)
		authed.POST("/shifts", middleware.RequireAdmin(), shiftHandler.Create)

		authed.POST("/availability", availabilityHandler.Declare)
		authed.DELETE("/availability", availabilityHandler.Withdraw)
		authed.GET("/availability/:date", availabilityHandler.ListAvailable)

		authed.POST("/leaves", middleware.RequireAdmin(), leaveHandler.Create)
		authed.GET("/leaves/:employeeId", leaveHandler.ListByEmployee)

		authed.POST("/assignments", middleware.RequireAdmin(), assignmentHandler.Assign)
		authed.DELETE("/assignments", middleware.RequireAdmin(), assignmentHandler.Remove)
		authed.PUT("/assignments/reassign", middleware.RequireAdmin(), assignmentHandler.Reassign)

		authed.POST("/scheduler/auto-assign", middleware.RequireAdmin(), schedulerHandler.AutoAssign)

		authed.POST("/swaps", swapHandler.Create)
		authed.GET("/swaps", swapHandler.List)
		authed.GET("/swaps/:id", swapHandler.Get)
		authed.POST("/swaps/:id/decision", middleware.RequireAdmin(), swapHandler.Decide)

		authed.GET("/roster/:date", rosterHandler.GetByDate)
		authed.GET("/roster/:date/unassigned", rosterHandler.Unassigned)
		authed.GET("/roster/:date/export", rosterHandler.Export)

		authed.GET("/audit", auditHandler.List)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
