package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"game-showcase-system/handlers"
	"game-showcase-system/metrics"
	"game-showcase-system/sessions"
	"game-showcase-system/store"
	"game-showcase-system/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	kv, err := store.NewKV(db)
	if err != nil {
		log.Fatal("failed to initialize document store:", err)
	}

	r2, err := utils.NewR2FromEnv()
	if err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}
	if r2 == nil {
		log.Println("⚠️  R2 not configured, serving media from local disk")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sessionStore sessions.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStore, err := sessions.NewRedisStore(redisURL)
		if err != nil {
			log.Fatal("failed to connect to redis:", err)
		}
		sessionStore = redisStore
		log.Println("✅ Sessions backed by Redis")
	} else {
		memStore := sessions.NewMemoryStore()
		janitor, err := sessions.StartJanitor(memStore, 10*time.Minute)
		if err != nil {
			log.Fatal("failed to start session janitor:", err)
		}
		defer func() { _ = janitor.Shutdown() }()
		sessionStore = memStore
		log.Println("⚠️  Sessions in process memory: a restart logs every panel user out")
	}

	metrics.Register()
	metricsAddr := os.Getenv("METRICS_ADDR")
	if metricsAddr == "" {
		metricsAddr = ":9100"
	}
	metrics.Serve(metricsAddr)

	panelHost := os.Getenv("PANEL_HOST")
	if panelHost == "" {
		panelHost = "panel.localhost"
	}

	app := handlers.NewApp(handlers.Deps{
		KV:        kv,
		Sessions:  sessionStore,
		PanelHost: panelHost,
		R2:        r2,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Printf("✅ Panel served for hostname %q, public site for everything else", panelHost)
	log.Printf("✅ Metrics on %s/metrics", metricsAddr)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
