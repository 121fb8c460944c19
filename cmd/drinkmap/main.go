package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/drinkmap/internal/choropleth"
	"github.com/xxxsen/drinkmap/internal/config"
	"github.com/xxxsen/drinkmap/internal/loader"
	"github.com/xxxsen/drinkmap/internal/output"
	"github.com/xxxsen/drinkmap/internal/projection"
	"github.com/xxxsen/drinkmap/internal/source"
	"go.uber.org/zap"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "drinkmap",
	Short:         "Render a world choropleth of alcohol consumption",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML configuration file")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(replayCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("drinkmap failed, err:%v", err)
	}
}

// setup loads config and initialises logging; every subcommand starts here.
func setup(ctx context.Context) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// logger not initialised yet, caller falls back to stderr
		return nil, nil, fmt.Errorf("init config failed, err:%w", err)
	}
	logkit := logger.Init(cfg.Log.File, cfg.Log.Level, int(cfg.Log.FileCount),
		int(cfg.Log.FileSize), int(cfg.Log.KeepDays), cfg.Log.Console)
	if cfg.Pprof.Enable {
		startPprofServer(ctx, cfg.Pprof.Bind, logkit)
	}
	return cfg, logkit, nil
}

func buildMap(ctx context.Context, cfg *config.Config) (*choropleth.Map, error) {
	geom, err := source.MakeSource(cfg.Geometry.Link)
	if err != nil {
		return nil, fmt.Errorf("make geometry source failed, link:%s, err:%w", cfg.Geometry.Link, err)
	}
	st, err := source.MakeSource(cfg.Statistics.Link)
	if err != nil {
		return nil, fmt.Errorf("make statistics source failed, link:%s, err:%w", cfg.Statistics.Link, err)
	}
	ds, err := loader.Load(ctx, geom, st, loader.WithNameKey(cfg.Geometry.NameKey))
	if err != nil {
		return nil, err
	}
	proj := projection.NewNaturalEarth1(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Scale)
	return choropleth.Build(ctx, ds, proj, choropleth.WithColorCache(cfg.Cache.Size))
}

func canvasOf(cfg *config.Config) output.Canvas {
	return output.Canvas{
		Width:   cfg.Canvas.Width,
		Height:  cfg.Canvas.Height,
		Padding: cfg.Canvas.Padding,
	}
}

func writeFile(path string, fn func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
