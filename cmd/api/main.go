package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
	"github.com/karakusgokhan/team-hub/internal/api/middleware"
	"github.com/karakusgokhan/team-hub/internal/api/routes"
	"github.com/karakusgokhan/team-hub/internal/domain/calendar"
	"github.com/karakusgokhan/team-hub/internal/domain/checkin"
	"github.com/karakusgokhan/team-hub/internal/domain/decision"
	"github.com/karakusgokhan/team-hub/internal/domain/message"
	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/domain/priority"
	"github.com/karakusgokhan/team-hub/internal/domain/task"
	"github.com/karakusgokhan/team-hub/internal/domain/team"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/cache"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/demo"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/scheduler"
	"github.com/karakusgokhan/team-hub/pkg/config"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

// @title           TeamHub API
// @version         1.0
// @description     A team coordination dashboard API with check-ins, priorities, a message board, a decision log, tasks and a shared calendar.

// @host      localhost:8000
// @BasePath

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(middleware.NewMetricsMiddleware().CollectMetrics())
	router.Use(middleware.CurrentUser(cfg.Team.DefaultUser))

	corsConfig := cors.Config{
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Live mode needs both the key and the base id; anything less runs
	// on the demo seed with no network calls.
	var client *airtable.Client
	if cfg.Airtable.Enabled() {
		client = airtable.NewClient(cfg.Airtable.APIKey, cfg.Airtable.BaseID, cfg.Server.Timeout, log)
		log.Info("Running in live mode", zap.String("base_id", cfg.Airtable.BaseID))
	} else {
		log.Info("Airtable not configured, running in demo mode")
	}

	// Optional Redis response cache. A nil client turns every cache
	// middleware into a pass-through.
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(cache.NewConfigFromEnv(cfg))
		if err != nil {
			log.Warn("Redis unavailable, continuing without response cache", zap.Error(err))
		}
	}
	defer redisClient.Close()
	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, "teamhub", time.Minute)

	notices := notice.NewBoard(0)
	seed := demo.NewSeed(time.Now())
	timeout := cfg.Server.Timeout

	teamService := team.NewService(client, log, seed.Members)
	checkinService := checkin.NewService(client, notices, log, timeout, seed.CheckIns)
	priorityService := priority.NewService(client, notices, log, timeout, seed.Priorities)
	messageService := message.NewService(client, notices, log, timeout, seed.Messages)
	decisionService := decision.NewService(client, notices, log, timeout, seed.Decisions)
	taskService := task.NewService(client, notices, log, timeout, seed.Tasks)
	calendarService := calendar.NewService(client, notices, log, timeout, seed.Events)

	sources := map[string]scheduler.Loader{
		"team":       teamService,
		"checkins":   checkinService,
		"priorities": priorityService,
		"messages":   messageService,
		"decisions":  decisionService,
		"tasks":      taskService,
		"calendar":   calendarService,
	}

	// Pull the initial snapshots before serving. Failures fall back to
	// the seed already in place; the notice board tells the user.
	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		for name, src := range sources {
			if err := src.Load(ctx); err != nil {
				log.Warn("Initial snapshot load failed, serving seed data",
					zap.String("source", name),
					zap.Error(err),
				)
				notices.Post(notice.LevelWarning, fmt.Sprintf("Loading %s from Airtable failed, showing demo data", name))
			}
		}
		cancel()

		if cfg.Refresh.Enabled {
			refresher := scheduler.NewScheduler(sources, log, timeout)
			if err := refresher.Start(cfg.Refresh.Cron); err != nil {
				log.Error("Failed to start snapshot refresh", zap.Error(err))
			} else {
				defer refresher.Stop()
			}
		}
	}

	routes.NewStatusRoutes(handlers.NewStatusHandler(client, notices)).RegisterRoutes(router)
	routes.NewTeamRoutes(handlers.NewTeamHandler(teamService)).RegisterRoutes(router, cacheMiddleware)
	routes.NewCheckInRoutes(handlers.NewCheckInHandler(checkinService)).RegisterRoutes(router, cacheMiddleware)
	routes.NewPriorityRoutes(handlers.NewPriorityHandler(priorityService)).RegisterRoutes(router, cacheMiddleware)
	routes.NewMessageRoutes(handlers.NewMessageHandler(messageService)).RegisterRoutes(router, cacheMiddleware)
	routes.NewDecisionRoutes(handlers.NewDecisionHandler(decisionService)).RegisterRoutes(router, cacheMiddleware)
	routes.NewTaskRoutes(handlers.NewTaskHandler(taskService)).RegisterRoutes(router, cacheMiddleware)
	routes.NewCalendarRoutes(handlers.NewCalendarHandler(calendarService)).RegisterRoutes(router, cacheMiddleware)
	routes.NewShareRoutes(handlers.NewShareHandler(
		calendarService, teamService, checkinService, priorityService, taskService, decisionService,
	)).RegisterRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
