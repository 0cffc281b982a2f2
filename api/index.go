package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/oliviajools/provoid-website-de-sub001/internal/blog"
	"github.com/oliviajools/provoid-website-de-sub001/internal/chat"
	"github.com/oliviajools/provoid-website-de-sub001/internal/config"
	"github.com/oliviajools/provoid-website-de-sub001/internal/logger"
	"github.com/oliviajools/provoid-website-de-sub001/internal/newsletter"
	"github.com/oliviajools/provoid-website-de-sub001/internal/web"
)

var (
	app  http.Handler
	once sync.Once
)

func initApp() {
	// Serverless filesystems are read-only outside /tmp. The document is
	// ephemeral there; point DATA_DIR somewhere durable for real persistence.
	if os.Getenv("DATA_DIR") == "" {
		os.Setenv("DATA_DIR", "/tmp")
	}

	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}

	store := blog.NewFileStore(filepath.Join(cfg.DataDir, "posts.json"))
	completer := chat.NewClient(cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel)
	news := newsletter.NewClient(cfg.NewsletterBaseURL, cfg.NewsletterAPIKey)

	app = web.NewServer(cfg, log, store, completer, news).Handler()
}

// Handler is the entry point for serverless deployments.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(initApp)
	app.ServeHTTP(w, r)
}
