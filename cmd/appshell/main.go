package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ghiac/appshell"
	"github.com/ghiac/appshell/config"
	"github.com/ghiac/appshell/log"
	"github.com/ghiac/appshell/server"
)

func main() {
	// Parse command line flags
	menuPath := flag.String("menu", "", "Path to a YAML menu file (default: built-in menu or APPSHELL_MENU_PATH)")
	port := flag.Int("port", 0, "HTTP port (default: 8080 or APPSHELL_HTTP_PORT)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Log.Debugf("No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if !log.Log.SetLevel(cfg.LogLevel) {
		log.Log.Warnf("Unknown log level %q, keeping info", cfg.LogLevel)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Flags override the environment
	if *menuPath != "" {
		cfg.MenuPath = *menuPath
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
		if err := cfg.Validate(); err != nil {
			log.Log.Errorf("Invalid configuration: %v", err)
			os.Exit(1)
		}
	}

	log.Log.Infof("=== App Shell %s ===", appshell.Version())
	log.Log.Infof("Title: %s", cfg.Title)
	log.Log.Infof("Metrics Enabled: %v", cfg.Features.MetricsEnabled)
	log.Log.Infof("Development Sign-in: %v", cfg.Features.DevLogin)

	sh, err := appshell.New(cfg)
	if err != nil {
		log.Log.Errorf("Failed to create shell: %v", err)
		os.Exit(1)
	}
	log.Log.Infof("Loaded %d navigation links", len(sh.Items()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(cfg, sh)
	if err := srv.Start(ctx); err != nil {
		log.Log.Errorf("HTTP server failed: %v", err)
		os.Exit(1)
	}
}
