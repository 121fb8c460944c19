package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/drinkmap/internal/output"
	"go.uber.org/zap"
)

var renderFlags struct {
	svg string
	png string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Load both datasets and write the map as SVG and/or PNG",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderFlags.svg, "svg", "", "SVG output path, '-' for stdout")
	renderCmd.Flags().StringVar(&renderFlags.png, "png", "", "PNG output path")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, logkit, err := setup(ctx)
	if err != nil {
		return err
	}
	defer logkit.Sync() //nolint:errcheck

	if renderFlags.svg != "" {
		cfg.Output.SVG = renderFlags.svg
	}
	if renderFlags.png != "" {
		cfg.Output.PNG = renderFlags.png
	}
	if cfg.Output.SVG == "" && cfg.Output.PNG == "" {
		cfg.Output.SVG = "-"
	}

	m, err := buildMap(ctx, cfg)
	if err != nil {
		logkit.Error("build map failed", zap.Error(err))
		return err
	}
	canvas := canvasOf(cfg)
	now := time.Now()

	if cfg.Output.SVG != "" {
		write := func(w io.Writer) error {
			return output.WriteSVG(w, m.Scene, canvas, now, m.Titles)
		}
		if cfg.Output.SVG == "-" {
			err = write(os.Stdout)
		} else {
			err = writeFile(cfg.Output.SVG, write)
		}
		if err != nil {
			return err
		}
		logkit.Info("svg written", zap.String("path", cfg.Output.SVG))
	}
	if cfg.Output.PNG != "" {
		err = writeFile(cfg.Output.PNG, func(w io.Writer) error {
			return output.RenderPNG(w, m.Scene, canvas, output.PNGOptions{Scale: cfg.Output.PNGScale, Now: now})
		})
		if err != nil {
			return err
		}
		logkit.Info("png written", zap.String("path", cfg.Output.PNG))
	}
	return nil
}
