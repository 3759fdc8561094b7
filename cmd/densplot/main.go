package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/openplacer/placeviz/internal/cli"
	"github.com/openplacer/placeviz/internal/config"
	"github.com/openplacer/placeviz/internal/errors"
	"github.com/openplacer/placeviz/internal/renderer"
	"github.com/openplacer/placeviz/internal/snapshot"
	"github.com/openplacer/placeviz/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Input   string `arg:"" name:"input" help:"Input density table (CSV or XLSX)" optional:""`
	Output  string `arg:"" name:"output" help:"Output PNG path (if omitted, the heatmap is shown in the terminal)" optional:""`
	Title   string `help:"Plot title (defaults to the input filename)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Version bool   `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("densplot"),
		kong.Description("Render a placement density table as a color-mapped heatmap."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion("densplot", version)
		os.Exit(0)
	}

	// Validate required arguments when not showing version
	if CLI.Input == "" {
		cli.PrintError("<input> is required")
		os.Exit(1)
	}

	// Validate input file exists
	if _, err := os.Stat(CLI.Input); os.IsNotExist(err) {
		cli.PrintError(fmt.Sprintf("input file does not exist: %s", CLI.Input))
		os.Exit(1)
	}

	if err := run(); err != nil {
		cli.PrintError(errors.UserMessage(err))
		os.Exit(1)
	}
}

func run() error {
	logger := cli.NewLogger(CLI.Verbose)

	samples, skipped, err := snapshot.ReadDensityTable(CLI.Input)
	if err != nil {
		return err
	}
	if len(skipped) > 0 {
		cli.PrintWarning(fmt.Sprintf("skipped %d malformed row(s), rerun with --verbose for details", len(skipped)))
		for _, diag := range skipped {
			logger.Debug("skipped", "row", diag)
		}
	}

	grid, err := snapshot.ReconstructGrid(samples)
	if err != nil {
		return err
	}

	title := CLI.Title
	if title == "" {
		title = defaultTitle(CLI.Input)
	}
	logger.Debug("rendering density", "samples", len(samples), "cols", len(grid.Xs), "rows", len(grid.Ys))

	img, err := renderer.RenderDensity(grid, title)
	if err != nil {
		return err
	}

	// Without an output path the heatmap goes to the terminal instead of
	// a file.
	if CLI.Output == "" {
		st := grid.Stats()
		summary := fmt.Sprintf("max %.3f | mean %.3f | > %.1f: %d bins (%.1f%%)",
			st.Max, st.Mean, config.OvercrowdThreshold, st.Overcrowded, st.OvercrowdedPct())
		if err := ui.ShowImage(img, title, summary); err != nil {
			return errors.Wrap(errors.CodeRender, err, "displaying heatmap")
		}
		cli.PrintSuccess(fmt.Sprintf("Displayed %d samples as a %d × %d grid",
			len(samples), len(grid.Xs), len(grid.Ys)))
		return nil
	}

	if err := renderer.SavePNG(img, CLI.Output); err != nil {
		return err
	}
	cli.PrintSuccess(fmt.Sprintf("Rendered %d samples (%d × %d grid) to %s",
		len(samples), len(grid.Xs), len(grid.Ys), CLI.Output))
	return nil
}

// defaultTitle derives a plot title from the input filename.
func defaultTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
