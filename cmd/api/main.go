package main

import (
	"log"

	"github.com/RevanthDadi9/analyzer/internal/bootstrap"
	"github.com/RevanthDadi9/analyzer/internal/shared/config"
	"github.com/RevanthDadi9/analyzer/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting upload server on %s (env=%s analyzer=%s)", addr, cfg.Env, cfg.AnalyzerBaseURL)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
