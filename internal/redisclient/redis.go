package redisclient

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"github.com/CoreFitApps/gym-scheduler/internal/config"
)

// Separate logical databases keep role-cache entries, schedule backups
// and the task queue from stepping on each other.

func newClient(cfg *config.Config, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis (db %d): %v", db, err)
	}
	return client
}

func NewRoleCache(cfg *config.Config) *redis.Client {
	return newClient(cfg, cfg.RedisRoleCacheDB)
}

func NewBackupStore(cfg *config.Config) *redis.Client {
	return newClient(cfg, cfg.RedisBackupDB)
}

func AsynqOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisTasksDB,
	}
}
