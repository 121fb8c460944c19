package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/drinkmap/internal/interaction"
	"github.com/xxxsen/drinkmap/internal/output"
	"github.com/xxxsen/drinkmap/internal/replay"
	"go.uber.org/zap"
)

var replayFlags struct {
	outDir string
}

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Drive hover interaction from a scripted pointer event file",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayFlags.outDir, "out-dir", ".", "directory for snapshot frames")
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, logkit, err := setup(ctx)
	if err != nil {
		return err
	}
	defer logkit.Sync() //nolint:errcheck

	script, err := replay.LoadScript(args[0])
	if err != nil {
		return err
	}
	m, err := buildMap(ctx, cfg)
	if err != nil {
		logkit.Error("build map failed", zap.Error(err))
		return err
	}
	canvas := canvasOf(cfg)
	clock := interaction.NewManualClock(time.Now())
	overlay := output.NewOverlay()
	machine := m.NewMachine(
		interaction.WithClock(clock),
		interaction.WithLogger(logkit),
		interaction.WithSurface(overlay),
	)
	driver := replay.NewDriver(m.Scene, machine, clock)

	snap := func(ctx context.Context, f replay.Frame) error {
		tip := overlay.Tooltip()
		path := filepath.Join(replayFlags.outDir, f.Event.Snapshot)
		return writeFile(path, func(w io.Writer) error {
			return output.RenderPNG(w, m.Scene, canvas, output.PNGOptions{
				Scale:   cfg.Output.PNGScale,
				Now:     f.Time,
				Tooltip: &tip,
			})
		})
	}
	frames, err := driver.Run(ctx, script, snap)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, f := range frames {
		focus := f.State.Shape
		if focus == "" {
			focus = "-"
		}
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", f.Seq, f.Event.Type, f.State.Kind, focus)
		for _, line := range tooltipLines(f.Tooltip) {
			fmt.Fprintf(out, "\t%s\n", line)
		}
	}
	logkit.Info("replay finished", zap.Int("events", len(frames)))
	return nil
}

func tooltipLines(t interaction.Tooltip) []string {
	if !t.Visible {
		return nil
	}
	return t.Content.Lines()
}
