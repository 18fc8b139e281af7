package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/CoreFitApps/gym-scheduler/internal/backup"
	"github.com/CoreFitApps/gym-scheduler/internal/config"
	dbpkg "github.com/CoreFitApps/gym-scheduler/internal/db"
	"github.com/CoreFitApps/gym-scheduler/internal/logger"
	"github.com/CoreFitApps/gym-scheduler/internal/notify"
	"github.com/CoreFitApps/gym-scheduler/internal/realtime"
	"github.com/CoreFitApps/gym-scheduler/internal/redisclient"
	"github.com/CoreFitApps/gym-scheduler/internal/rolecache"
	"github.com/CoreFitApps/gym-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	roleCache := rolecache.NewRedis(redisclient.NewRoleCache(cfg))
	backupStore := backup.NewRedisStore(redisclient.NewBackupStore(cfg))

	hub := realtime.NewHub(zlog)
	notifier := notify.NewNotifier(db, zlog)

	// ======================================================
	// SESSION REMINDERS (ASYNQ)
	// ======================================================
	asynqOpt := redisclient.AsynqOpt(cfg)

	asynqClient := asynq.NewClient(asynqOpt)
	defer asynqClient.Close()

	reminders := notify.NewReminderScheduler(asynqClient, zlog)

	asynqServer := asynq.NewServer(asynqOpt, asynq.Config{
		Concurrency: 5,
	})
	mux := asynq.NewServeMux()
	notify.RegisterHandlers(mux, db, zlog)

	go func() {
		if err := asynqServer.Run(mux); err != nil {
			zlog.Fatal("reminder worker stopped", zap.Error(err))
		}
	}()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       zlog,
		RoleCache: roleCache,
		Backup:    backupStore,
		Hub:       hub,
		Notifier:  notifier,
		Reminders: reminders,
	})

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
