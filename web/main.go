package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/logging"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	configPath := flag.String("config", "", "Path to a TOML configuration file")
	scenesDir := flag.String("scenes", "scenes", "Directory of scene files")
	flag.Parse()

	logger := logging.Default()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("error loading config", "err", err)
			os.Exit(1)
		}
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	webServer := server.NewServer(*port, cfg, *scenesDir, logger)
	logger.Infof("Whitted Raytracer Web Server, try http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(ctx); err != nil {
		logger.Error("error starting server", "err", err)
		os.Exit(1)
	}
}
