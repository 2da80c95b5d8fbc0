package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"palette-backend/internal/config"
	infraCache "palette-backend/internal/infrastructure/cache"
	"palette-backend/internal/infrastructure/database"
	"palette-backend/internal/infrastructure/email"
	"palette-backend/internal/infrastructure/inference"
	"palette-backend/internal/infrastructure/queue"
	"palette-backend/internal/infrastructure/storage"
	"palette-backend/pkg/cache"

	"palette-backend/internal/domains/palette"
	paletteHandler "palette-backend/internal/domains/palette/handler"
	paletteRepo "palette-backend/internal/domains/palette/repository"
	paletteService "palette-backend/internal/domains/palette/service"
	"palette-backend/internal/domains/upload"
	uploadHandler "palette-backend/internal/domains/upload/handler"
	uploadService "palette-backend/internal/domains/upload/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order:
// config → infrastructure → repositories → services → handlers.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	QueueClient *queue.Client
	Classifier  *inference.Client
	EmailSvc    email.EmailService

	// Repositories
	PaletteRepo palette.Repository

	// Services
	PaletteService palette.Service
	UploadService  upload.Service

	// Handlers
	PaletteHandler *paletteHandler.PaletteHandler
	UploadHandler  *uploadHandler.UploadHandler
}

// NewContainer builds the full dependency graph. A failure from any
// required backend (Postgres, MinIO, inference config) aborts startup;
// Redis is cache-only and degrades to a warning.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Step 2: PostgreSQL
	log.Println("🗄️  Connecting to PostgreSQL...")
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	// Step 3: Redis cache (non-critical)
	log.Println("🔴 Connecting to Redis...")
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Cache = redisCache

	// Step 4: object storage
	log.Println("🪣 Connecting to MinIO...")
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ Object storage ready")

	// Step 5: inference client
	classifier, err := inference.NewClient(cfg.Inference)
	if err != nil {
		return nil, fmt.Errorf("failed to init inference client: %w", err)
	}
	c.Classifier = classifier

	// Step 6: task queue client + email
	c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.EmailSvc = email.NewSMTPEmailService(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.From)

	// Step 7: repositories
	c.PaletteRepo = paletteRepo.NewPostgresRepository(db.Pool)

	// Step 8: services
	c.PaletteService = paletteService.NewPaletteService(c.PaletteRepo, c.Classifier, c.Cache, c.QueueClient)
	c.UploadService = uploadService.NewUploadService(c.Storage, storage.NewImageProcessor())

	// Step 9: handlers
	c.PaletteHandler = paletteHandler.NewPaletteHandler(c.PaletteService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup releases held connections. Call during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
