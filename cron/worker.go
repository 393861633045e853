package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"carebridge/config"
	"carebridge/services/geo"
)

const TypeGeocodeMissing = "geocode:missing"

// NewGeocodeMissingTask builds the batch-geocode task.
func NewGeocodeMissingTask() *asynq.Task {
	return asynq.NewTask(TypeGeocodeMissing, nil, asynq.MaxRetry(2))
}

// NewQueueClient returns an asynq client on the queue Redis DB.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitGeocodeWorker runs the async worker in background. Concurrency is
// pinned to 1 so remote geocoding calls within a run stay serialized behind
// the resolver's throttle.
func InitGeocodeWorker(batch *geo.BatchGeocoder, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeGeocodeMissing, handleGeocodeMissing(batch, logger))

	go func() {
		log.Println("[GeocodeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[GeocodeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[GeocodeWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleGeocodeMissing(batch *geo.BatchGeocoder, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		result, err := batch.Run(ctx)
		if err != nil {
			logger.Warn("batch geocode run aborted",
				zap.Int("updated", result.Updated),
				zap.Int("skipped", result.Skipped),
				zap.Int("failed", result.Failed),
				zap.Error(err))
			return err
		}
		logger.Info("batch geocode run finished",
			zap.Int("updated", result.Updated),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed))
		return nil
	}
}
