// Command influencer-studio runs the Influencer Research Studio web application.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/creatorlens/influencer-studio/internal/config"
	"github.com/creatorlens/influencer-studio/internal/db"
	"github.com/creatorlens/influencer-studio/internal/web"
	webfs "github.com/creatorlens/influencer-studio/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	if !cfg.HasQloo() && !cfg.HasPerplexity() && !cfg.HasOpenAI() {
		slog.Warn("no vendor API keys configured, dashboard will serve fallback content only")
	}

	// Create sub-filesystems for templates and static files
	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	// Persistence is optional; without DATABASE_URL analyses are kept only
	// in the session.
	var database *db.DB
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("preparing schema: %w", err)
		}
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:        cfg.Addr,
		Config:      cfg,
		Database:    database,
		TemplatesFS: templates,
		StaticFS:    static,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}
