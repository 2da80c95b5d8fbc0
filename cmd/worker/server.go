package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"palette-backend/internal/infrastructure/queue"
	"palette-backend/internal/infrastructure/queue/handlers"
	"palette-backend/pkg/container"
)

// asynqServer wraps asynq.Server so main can shut it down
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer wires task handlers and starts processing in the
// background. The server shares the API's Redis instance as its broker.
func setupAsynqServer(c *container.Container) *asynqServer {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypePaletteEmail, handlers.PaletteEmailHandler(
		c.PaletteService,
		c.EmailSvc,
		c.Config.App.PublicURL,
	))

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq] ❌ Task failed - Type: %s, Error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown stops task processing, letting in-flight tasks finish
func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.Server.Shutdown()
	log.Println("[Worker] ✓ Gracefully stopped")
}
