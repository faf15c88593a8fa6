package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-desk/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-desk/internal/db"
	"github.com/BruksfildServices01/barber-desk/internal/infra/blob"
	"github.com/BruksfildServices01/barber-desk/internal/middleware"
	"github.com/BruksfildServices01/barber-desk/internal/routes"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

func main() {

	cfg := config.Load()

	st := newStore(cfg)
	bs := newBlobStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, bs)

	log.Printf("Server running on %s (store driver: %s)", cfg.Addr(), cfg.StoreDriver)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newStore(cfg *config.Config) store.Store {
	switch cfg.StoreDriver {
	case "postgres":
		db := dbpkg.NewDB(cfg)
		st, err := store.NewPostgresStore(db)
		if err != nil {
			log.Fatalf("failed to init postgres store: %v", err)
		}
		return st

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return store.NewRedisStore(client)

	case "memory":
		return store.NewMemoryStore()

	default:
		log.Fatalf("unknown store driver: %s", cfg.StoreDriver)
		return nil
	}
}

func newBlobStore(cfg *config.Config) blob.Store {
	if cfg.S3Bucket == "" {
		log.Println("S3_BUCKET not set, exports and photos disabled")
		return blob.Disabled{}
	}

	bs, err := blob.NewS3(blob.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}
	return bs
}
