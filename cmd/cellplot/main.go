package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/openplacer/placeviz/internal/cli"
	"github.com/openplacer/placeviz/internal/errors"
	"github.com/openplacer/placeviz/internal/renderer"
	"github.com/openplacer/placeviz/internal/snapshot"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Input   string `arg:"" name:"input" help:"Input placement table (CSV or XLSX)" optional:""`
	Output  string `arg:"" name:"output" help:"Output PNG path (defaults to the input path with a .png extension)" optional:""`
	Title   string `help:"Plot title (defaults to the input filename)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Version bool   `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("cellplot"),
		kong.Description("Render a cell placement table as an annotated floorplan image."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion("cellplot", version)
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

	records, skipped, err := snapshot.ReadCellTable(CLI.Input)
	if err != nil {
		return err
	}
	if len(skipped) > 0 {
		cli.PrintWarning(fmt.Sprintf("skipped %d malformed row(s), rerun with --verbose for details", len(skipped)))
		for _, diag := range skipped {
			logger.Debug("skipped", "row", diag)
		}
	}

	layout, err := snapshot.NormalizeLayout(records)
	if err != nil {
		return err
	}

	title := CLI.Title
	if title == "" {
		title = defaultTitle(CLI.Input)
	}
	logger.Debug("rendering placement", "cells", len(layout.Cells), "title", title)

	img, err := renderer.RenderPlacement(layout, title)
	if err != nil {
		return err
	}

	output := CLI.Output
	if output == "" {
		output = strings.TrimSuffix(CLI.Input, filepath.Ext(CLI.Input)) + ".png"
	}
	if err := renderer.SavePNG(img, output); err != nil {
		return err
	}

	movable, fixed := layout.Counts()
	cli.PrintSuccess(fmt.Sprintf("Rendered %d cells (%d movable, %d fixed) to %s",
		len(layout.Cells), movable, fixed, output))
	return nil
}

// defaultTitle derives a plot title from the input filename.
func defaultTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
