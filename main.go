package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/logging"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/watch"
)

const scenesDir = "scenes"

// options are the resolved command line settings
type options struct {
	sceneType  string
	configPath string
	outputPath string
	format     string
	workers    int
	watch      bool
	logLevel   string
}

func main() {
	// Parse command line flags
	opts := options{}
	flag.StringVar(&opts.sceneType, "scene", "default", "Built-in scene name, scene name under scenes/, or path to a .txt/.toml scene file")
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	flag.StringVar(&opts.outputPath, "output", "", "Output file (overrides the scene's OUTPUT)")
	flag.StringVar(&opts.format, "format", "", "Output format: ppm, png, bmp or tiff")
	flag.IntVar(&opts.workers, "workers", -1, "Number of render workers (0 = one per CPU)")
	flag.BoolVar(&opts.watch, "watch", false, "Re-render whenever the scene file changes")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Without -output or an OUTPUT line, renders are saved to output/<scene>/render_<timestamp>.<ext>")
		return
	}

	if *list {
		printScenes()
		return
	}

	if err := run(opts); err != nil && !errors.Is(err, context.Canceled) {
		logging.Default().Error(err.Error())
		os.Exit(1)
	}
}

// run loads configuration, renders the scene once and optionally keeps
// re-rendering on file changes until interrupted
func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	logger := logging.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loadOpts := loaders.Options{
		Limits: cfg.SceneLimits(),
		Logger: logging.Warnings(logger),
	}

	if err := renderScene(ctx, opts, cfg, loadOpts, logger); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	path, ok := sceneFilePath(opts.sceneType)
	if !ok {
		return fmt.Errorf("-watch needs a scene file, %q is built in", opts.sceneType)
	}
	w, err := watch.New(path, watch.DefaultDebounce, logging.Warnings(logger))
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching for changes", "file", w.Path())
	return w.Run(ctx, func(string) {
		if err := renderScene(ctx, opts, cfg, loadOpts, logger); err != nil {
			logger.Error("re-render failed", "err", err)
		}
	})
}

// loadConfig reads the optional config file and applies flag overrides
func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	if opts.workers >= 0 {
		cfg.Render.Workers = opts.workers
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, cfg.Validate()
}

// renderScene performs one load, render and save cycle
func renderScene(ctx context.Context, opts options, cfg config.Config, loadOpts loaders.Options, logger *log.Logger) error {
	selectedScene, err := createScene(opts.sceneType, loadOpts)
	if err != nil {
		return err
	}

	filename, format, err := resolveOutput(selectedScene, opts, cfg, time.Now())
	if err != nil {
		return err
	}

	whitted := integrator.NewWhittedIntegrator(selectedScene, integrator.WhittedConfig{
		MaxReflections: cfg.Render.MaxReflections,
	})
	raytracer := renderer.NewRaytracer(selectedScene, whitted, renderer.Config{
		NumWorkers: cfg.Render.Workers,
	}, logging.Infos(logger))

	framebuffer, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	if err := output.Save(filename, framebuffer, format); err != nil {
		return err
	}

	fmt.Printf("Render completed in %v (%dx%d, %.0f pixels/s, %d workers)\n",
		stats.Duration, framebuffer.Width, framebuffer.Height, stats.PixelsPerSecond(), stats.Workers)
	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a scene name: built-in scenes first, then scene
// files by path, then scenes/<name>.txt and scenes/<name>.toml
func createScene(sceneType string, opts loaders.Options) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}

	if s, ok := scene.NewBuiltinScene(sceneType); ok {
		return s, nil
	}

	path, ok := sceneFilePath(sceneType)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (use -list to see available scenes)", sceneType)
	}
	return loaders.LoadScene(path, opts)
}

// sceneFilePath maps a scene name to a file. Explicit paths are returned
// as given, bare names are looked up in the scenes directory.
func sceneFilePath(sceneType string) (string, bool) {
	if _, builtin := scene.NewBuiltinScene(sceneType); builtin {
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(sceneType))
	if ext == ".txt" || ext == ".toml" {
		return sceneType, true
	}

	for _, candidate := range []string{".txt", ".toml"} {
		path := filepath.Join(scenesDir, sceneType+candidate)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// createOutputDir returns the directory renders of a scene are saved to
func createOutputDir(baseDir, sceneType string) string {
	name := filepath.Base(sceneType)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "scene"
	}
	return filepath.Join(baseDir, name)
}

// resolveOutput picks the output file and format. The -output flag wins
// over the scene's OUTPUT line; without either a timestamped name is
// generated. A recognised file extension selects the format, otherwise the
// configured format is used.
func resolveOutput(s *scene.Scene, opts options, cfg config.Config, now time.Time) (string, output.Format, error) {
	configured, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return "", "", err
	}

	filename := opts.outputPath
	if filename == "" {
		filename = s.Output
	}
	if filename == "" {
		timestamp := now.Format("20060102_150405")
		dir := createOutputDir(cfg.Output.Dir, opts.sceneType)
		return filepath.Join(dir, fmt.Sprintf("render_%s%s", timestamp, configured.Extension())), configured, nil
	}

	if format, err := output.FormatFromPath(filename); err == nil {
		return filename, format, nil
	}
	return filename, configured, nil
}

func printScenes() {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		fmt.Printf("Error listing scenes: %v\n", err)
		return
	}
	fmt.Println("Available scenes:")
	for _, info := range scenes {
		if info.Description != "" {
			fmt.Printf("  %-16s %s (%s)\n", info.ID, info.Name, info.Description)
		} else {
			fmt.Printf("  %-16s %s\n", info.ID, info.Name)
		}
	}
}
