package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/bubbletea"
	"github.com/fwojciec/linediff/chroma"
	"github.com/fwojciec/linediff/clipboard"
	"github.com/fwojciec/linediff/dmp"
	"github.com/fwojciec/linediff/fs"
	"github.com/fwojciec/linediff/jsonl"
	"github.com/fwojciec/linediff/lcs"
	"github.com/fwojciec/linediff/lipgloss"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoFiles is returned when no file arguments are given.
	ErrNoFiles = errors.New("no files given")
	// ErrUnknownDiffer is returned for an unsupported -differ value.
	ErrUnknownDiffer = errors.New("unknown differ")
)

// Config holds the parsed command line.
type Config struct {
	Report  bool
	Differ  string
	Workers int
	Paths   []string
}

// ParseConfig parses command line arguments, excluding the program name.
func ParseConfig(args []string, output io.Writer) (Config, error) {
	cfg := Config{}

	flags := flag.NewFlagSet("linediff", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintln(output, "Usage: linediff [flags] FILE...")
		fmt.Fprintln(output, "\nHighlights how each line differs from the line above it.")
		fmt.Fprintln(output, "Use - to read standard input.\n\nFlags:")
		flags.PrintDefaults()
	}
	flags.BoolVar(&cfg.Report, "report", false, "Write a JSONL report for every line pair instead of opening the viewer")
	flags.StringVar(&cfg.Differ, "differ", "dmp", "Diff engine: dmp or lcs")
	flags.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "Number of files analysed in parallel in report mode")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Paths = flags.Args()
	if len(cfg.Paths) == 0 {
		return Config{}, ErrNoFiles
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// NewDiffer returns the diff engine registered under name.
func NewDiffer(name string) (linediff.Differ, error) {
	switch name {
	case "dmp":
		return dmp.NewDiffer(), nil
	case "lcs":
		return lcs.NewDiffer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDiffer, name)
	}
}

// App opens a document in the interactive viewer.
type App struct {
	Loader linediff.DocumentLoader
	Viewer linediff.Viewer
}

// Run loads path and displays it until the user exits.
func (a *App) Run(ctx context.Context, path string) error {
	doc, err := a.Loader.Load(path)
	if err != nil {
		return err
	}
	return a.Viewer.View(ctx, doc)
}

// Reporter analyses documents and writes a report for every line pair.
type Reporter struct {
	Loader      linediff.DocumentLoader
	Highlighter *linediff.Highlighter
	Output      linediff.ReportWriter
	// Workers sets the number of files analysed in parallel.
	Workers int
}

// Run analyses every path and writes the reports in input order.
func (r *Reporter) Run(ctx context.Context, paths []string) error {
	// Collect results indexed by input position
	results := make([][]linediff.LineReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := r.Loader.Load(path)
			if err != nil {
				return err
			}
			reports, err := linediff.Analyze(doc, r.Highlighter)
			if err != nil {
				return err
			}
			results[i] = reports
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Write results in order
	for _, reports := range results {
		for _, report := range reports {
			if err := r.Output.Write(report); err != nil {
				return fmt.Errorf("error writing report: %w", err)
			}
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := ParseConfig(args, os.Stderr)
	if err != nil {
		return err
	}

	differ, err := NewDiffer(cfg.Differ)
	if err != nil {
		return err
	}
	highlighter := linediff.NewHighlighter(differ)
	loader := fs.NewLoader()

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Report {
		reporter := &Reporter{
			Loader:      loader,
			Highlighter: highlighter,
			Output:      jsonl.NewWriter(os.Stdout),
			Workers:     cfg.Workers,
		}
		return reporter.Run(ctx, cfg.Paths)
	}

	// Set up syntax highlighting
	theme := lipgloss.DetectTheme()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return fmt.Errorf("error setting up syntax highlighting: %w", err)
	}

	opts := []bubbletea.ModelOption{
		bubbletea.WithTheme(theme),
		bubbletea.WithLanguageDetector(chroma.NewDetector()),
		bubbletea.WithTokenizer(tokenizer),
	}
	if cb := clipboard.NewSystem(); cb.Available() {
		opts = append(opts, bubbletea.WithClipboard(cb))
	}
	// Standard input can only be read once.
	if cfg.Paths[0] != fs.StdinPath {
		opts = append(opts, bubbletea.WithLoader(loader))
	}

	app := &App{
		Loader: loader,
		Viewer: bubbletea.NewViewer(highlighter, opts...),
	}
	return app.Run(ctx, cfg.Paths[0])
}
