package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"parkbay/config"
	availabilityRepo "parkbay/database/repository/availability"
	bookingRepo "parkbay/database/repository/booking"
	"parkbay/models"

	"github.com/hibiken/asynq"
)

const (
	// TypeCompletionSweep moves confirmed bookings whose date has passed to
	// completed. The booking engine itself never leaves confirmed.
	TypeCompletionSweep = "booking:completion_sweep"

	// TypeIndexRebuild recomputes one derived availability document from
	// the booking collection, repairing drift from outside writers.
	TypeIndexRebuild = "availability:rebuild"
)

// IndexRebuildPayload names the derived document to recompute.
type IndexRebuildPayload struct {
	SpotID string `json:"spotId"`
	Date   string `json:"date"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitLifecycleWorker runs the async worker in background.
func InitLifecycleWorker(bookings bookingRepo.BookingRepository, availability availabilityRepo.AvailabilityRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCompletionSweep, handleCompletionSweep(bookings))
	mux.HandleFunc(TypeIndexRebuild, handleIndexRebuild(bookings, availability))

	// Start async worker with retry logic
	go func() {
		log.Println("[LifecycleWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[LifecycleWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[LifecycleWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCompletionSweep(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		today := time.Now().Format(models.DateLayout)
		n, err := bookings.CompletePastBookings(ctx, today)
		if err != nil {
			log.Printf("[CompletionSweep] sweep failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[CompletionSweep] completed %d past bookings", n)
		}
		return nil
	}
}

func handleIndexRebuild(bookings bookingRepo.BookingRepository, availability availabilityRepo.AvailabilityRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p IndexRebuildPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[IndexRebuild] invalid payload: %v", err)
			return err
		}

		confirmed, err := bookings.GetConfirmedBySpotAndDate(ctx, p.SpotID, p.Date)
		if err != nil {
			return err
		}
		if err := availability.Rebuild(ctx, p.SpotID, p.Date, confirmed); err != nil {
			log.Printf("[IndexRebuild] rebuild failed for %s on %s: %v", p.SpotID, p.Date, err)
			return err
		}
		return nil
	}
}

// StartCompletionScheduler enqueues a completion sweep on an interval. Runs
// until the process exits; sweeps are idempotent so overlap is harmless.
func StartCompletionScheduler(interval time.Duration) {
	client := asynq.NewClient(redisOpts())

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			if _, err := client.Enqueue(asynq.NewTask(TypeCompletionSweep, nil)); err != nil {
				log.Printf("[CompletionSweep] failed to enqueue sweep: %v", err)
			}
			<-ticker.C
		}
	}()
}
