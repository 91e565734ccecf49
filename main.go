package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-share/config"
	httpLayer "loan-share/http"
	"loan-share/repository"
	"loan-share/service"
)

func newCache(cfg config.CacheConfig) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		log.Println("Using in-process schedule cache")
		return repository.NewMockCache(), func() {}
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.TTL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s unreachable, falling back to in-process cache: %v", cfg.RedisAddr, err)
		cache.Close()
		return repository.NewMockCache(), func() {}
	}

	log.Printf("Using redis schedule cache at %s", cfg.RedisAddr)
	return cache, func() {
		if err := cache.Close(); err != nil {
			log.Printf("Error closing redis client: %v", err)
		}
	}
}

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	configPath := flag.String("config", "", "path to config file (default ./config.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ledgerRepo := repository.NewLedgerRepositoryMemory()
	sharingRepo := repository.NewSharingRepositoryMemory()

	cache, closeCache := newCache(cfg.Cache)
	defer closeCache()

	ledgerService := service.NewLedgerService(ledgerRepo)
	accessService := service.NewLoanAccessService(ledgerRepo, sharingRepo, cache)

	userHandler := httpLayer.NewUserHandler(ledgerService, accessService)
	loanHandler := httpLayer.NewLoanHandler(ledgerService, accessService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(userHandler, loanHandler, rateLimiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Loan service listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
