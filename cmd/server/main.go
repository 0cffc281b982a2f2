package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/oliviajools/provoid-website-de-sub001/internal/blog"
	"github.com/oliviajools/provoid-website-de-sub001/internal/chat"
	"github.com/oliviajools/provoid-website-de-sub001/internal/config"
	"github.com/oliviajools/provoid-website-de-sub001/internal/logger"
	"github.com/oliviajools/provoid-website-de-sub001/internal/newsletter"
	"github.com/oliviajools/provoid-website-de-sub001/internal/web"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalw("open store", "backend", cfg.StoreBackend, "error", err)
	}

	completer := chat.NewClient(cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel)
	news := newsletter.NewClient(cfg.NewsletterBaseURL, cfg.NewsletterAPIKey)

	server := web.NewServer(cfg, log, store, completer, news)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("server listening", "addr", cfg.Addr, "backend", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("shutdown", "error", err)
	}
	log.Infow("server stopped")
}

func openStore(cfg *config.Config) (blog.Store, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		return blog.NewSQLiteStore(filepath.Join(cfg.DataDir, "blog.db"))
	default:
		return blog.NewFileStore(filepath.Join(cfg.DataDir, "posts.json")), nil
	}
}
