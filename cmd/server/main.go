package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"interviewcraft/internal/ai"
	"interviewcraft/internal/chat"
	"interviewcraft/internal/config"
	"interviewcraft/internal/db"
	"interviewcraft/internal/gen"
	"interviewcraft/internal/httpapi"
	"interviewcraft/internal/httpapi/handlers"
	"interviewcraft/internal/models"
	"interviewcraft/internal/ratelimit"
	"interviewcraft/internal/store/rabbitmq"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)
	if err := gdb.AutoMigrate(&models.User{}, &chat.Chat{}, &chat.Message{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Provider registry. A provider that needs a credential refuses to build
	// without one, which makes a missing key fatal here rather than a
	// per-request surprise.
	reg := ai.NewRegistry()
	reg.Register("openai", func() (ai.Provider, error) {
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is required")
		}
		return ai.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	})
	reg.Register("ollama", func() (ai.Provider, error) {
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	})

	provider, err := reg.Get(cfg.AIProvider)
	if err != nil {
		log.Fatalf("ai provider %q: %v", cfg.AIProvider, err)
	}

	genSvc := gen.NewService(provider)
	chatSvc := chat.NewService(chat.NewRepo(gdb), genSvc)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	authLimiter, err := ratelimit.NewSlidingWindowLimiter(rdb, "interviewcraft:ratelimit", cfg.AuthRateLimit, cfg.AuthRateWindow)
	if err != nil {
		log.Fatalf("auth rate limiter: %v", err)
	}
	insightsLimiter, err := ratelimit.NewSlidingWindowLimiter(rdb, "interviewcraft:ratelimit", cfg.InsightsRateLimit, cfg.InsightsRateWindow)
	if err != nil {
		log.Fatalf("insights rate limiter: %v", err)
	}

	events, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		log.Printf("rabbitmq unavailable, domain events disabled: %v", err)
		events = nil
	}

	h := handlers.NewHandler(gdb, cfg, chatSvc, genSvc, events)
	r := httpapi.NewRouter(cfg, h, authLimiter, insightsLimiter)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Printf("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if events != nil {
		_ = events.Close()
	}
	_ = rdb.Close()
}
