// Package main - Entry point for the material-quantity API server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"material-quantity/api"
	"material-quantity/db"
	"material-quantity/internal/config"
	"material-quantity/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Default()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
		config.Set(cfg)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	listen := cfg.API.Addr
	if *addr != "" {
		listen = *addr
	}

	// The store is optional: without a database the server still
	// resolves, it just cannot bind batches to stored projects.
	var store *db.Store
	if cfg.Database.URL != "" {
		ctx := context.Background()
		s, err := db.New(ctx, cfg.Database)
		if err != nil {
			logging.Fatalf("failed to connect to database: %v", err)
		}
		if err := s.EnsureSchema(ctx); err != nil {
			logging.Fatalf("failed to apply schema: %v", err)
		}
		store = s
		defer store.Close()
	}

	server := api.NewServerWithStore(version, cfg.Resolver.DefaultWastePercent, store)

	logging.Info("material-quantity server listening",
		zap.String("addr", listen),
		zap.String("version", version),
		zap.Bool("store", store != nil))

	if err := http.ListenAndServe(listen, server); err != nil {
		logging.Fatalf("server exited: %v", err)
	}
}
