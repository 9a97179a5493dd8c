package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/carousel/fs"
	"github.com/fwojciec/carousel/goquery"
	carouselslog "github.com/fwojciec/carousel/slog"
	"github.com/fwojciec/carousel/thumb"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input   string `arg:"" help:"Path to the saved search-results HTML file"`
	Output  string `arg:"" help:"Path for the JSON output file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artparse"),
		kong.Description("Extract artwork records from a saved search-results page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("usage: artparse <input.html> <output.json>")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	html, err := os.ReadFile(cli.Input)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	extractor := carouselslog.NewLoggingExtractor(
		goquery.NewExtractor(thumb.NewResolver(), goquery.WithLogger(logger)),
		logger,
	)

	artworks, err := extractor.ExtractArtworks(string(html))
	if err != nil {
		return err
	}

	if err := fs.WriteArtworks(cli.Output, artworks); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(stdout, "Extracted %d artworks -> %s\n", len(artworks), cli.Output)
	return nil
}
