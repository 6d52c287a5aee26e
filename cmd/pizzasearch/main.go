package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/slicelab/pizzasearch/internal/catalog"
	"github.com/slicelab/pizzasearch/internal/config"
	"github.com/slicelab/pizzasearch/internal/logging"
	"github.com/slicelab/pizzasearch/internal/search"
	"github.com/slicelab/pizzasearch/internal/tui"
	"github.com/slicelab/pizzasearch/internal/update"
)

var version = "dev"

// flags holds the parsed command line.
type flags struct {
	pipe       bool
	debounce   time.Duration
	ignoreCase bool
	version    bool
	help       bool
	update     bool

	set *pflag.FlagSet
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	fs := pflag.NewFlagSet("pizzasearch", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&f.pipe, "pipe", false, "read queries from stdin, print results to stdout")
	fs.DurationVar(&f.debounce, "debounce", 500*time.Millisecond, "quiet period before a query is searched")
	fs.BoolVar(&f.ignoreCase, "ignore-case", false, "match without regard to case")
	fs.BoolVarP(&f.version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	fs.BoolVar(&f.update, "update", false, "update to the latest version")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.set = fs
	return f, nil
}

// apply lets flags given on the command line override the config file.
func (f *flags) apply(cfg *config.Config) {
	if f.set.Changed("debounce") {
		cfg.Search.Debounce = f.debounce.String()
	}
	if f.set.Changed("ignore-case") {
		cfg.Search.IgnoreCase = f.ignoreCase
	}
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printHelp(os.Stderr)
		os.Exit(2)
	}

	switch {
	case f.version:
		fmt.Printf("pizzasearch %s\n", version)
		return
	case f.help:
		printHelp(os.Stdout)
		return
	case f.update:
		runUpdate()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	firstRunErr := writeDefaultConfig()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		os.Exit(1)
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.Open(cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}
	if firstRunErr != nil {
		logger.Warn("could not write default config", "path", config.ConfigFile(), "err", firstRunErr)
	}

	if f.pipe {
		err = runPipe(ctx, os.Stdin, os.Stdout, cfg, logger)
	} else {
		err = run(cfg, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("exiting", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeDefaultConfig saves the defaults on first run so there is a
// config.yaml to edit.
func writeDefaultConfig() error {
	if !config.IsFirstRun() {
		return nil
	}
	return config.Save(config.Defaults())
}

func run(cfg config.Config, logger *slog.Logger) error {
	debounce, err := cfg.DebounceInterval()
	if err != nil {
		return err
	}

	model := tui.New(tui.Options{
		Catalog:  catalog.FromConfig(cfg.Catalog.Items),
		Debounce: debounce,
		Match:    search.MatchOptions{IgnoreCase: cfg.Search.IgnoreCase},
		Theme:    cfg.TUI.Theme,
		Logger:   logger,
		Version:  version,
	})
	// However the program ends, the screen's pipeline is released here.
	defer model.Close()

	logger.Info("starting search screen", "debounce", debounce, "ignore_case", cfg.Search.IgnoreCase)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// maxLineSize bounds one query line read in pipe mode.
const maxLineSize = 1 << 20

// lineSink prints each emitted result list as one comma-separated line.
type lineSink struct {
	w    io.Writer
	rows *search.ResultList
	err  error
}

func (s *lineSink) SetItems(items []string) {
	if s.err != nil {
		return
	}
	s.rows.SetItems(items)
	_, s.err = fmt.Fprintln(s.w, strings.Join(s.rows.Items(), ", "))
}

// runPipe treats every line of r as one edit of the search field.
func runPipe(ctx context.Context, r io.Reader, w io.Writer, cfg config.Config, logger *slog.Logger) error {
	debounce, err := cfg.DebounceInterval()
	if err != nil {
		return err
	}

	sink := &lineSink{w: w, rows: search.NewResultList()}
	p := search.NewPipeline(catalog.FromConfig(cfg.Catalog.Items).Items(), sink,
		search.WithMatchOptions(search.MatchOptions{IgnoreCase: cfg.Search.IgnoreCase}),
		search.WithLogger(logger),
	)

	edits := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(edits)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for sc.Scan() {
			select {
			case edits <- sc.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- sc.Err()
	}()

	if err := search.Run(ctx, edits, p, debounce); err != nil {
		return err
	}
	if err := <-readErr; err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return sink.err
}

func runUpdate() {
	if version == "dev" {
		fmt.Println("Auto-update is not available for development builds.")
		return
	}
	fmt.Println("Checking for updates...")
	res, err := update.Apply(context.Background(), version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		os.Exit(1)
	}
	if res.Applied {
		fmt.Printf("Updated to v%s.\n", res.LatestVersion)
	} else {
		fmt.Println("Already running the latest version.")
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `pizzasearch %s — search the pizza menu as you type

Usage:
  pizzasearch                         Start the search screen
  pizzasearch --pipe                  Read queries from stdin, one per line
  pizzasearch --debounce <duration>   Quiet period before searching (default 500ms)
  pizzasearch --ignore-case           Match without regard to case
  pizzasearch --version               Print version and exit
  pizzasearch --help                  Show this help
  pizzasearch --update                Update to the latest version

Keys (search screen):
  type         Filter the menu by prefix
  up/down      Scroll results
  pgup/pgdn    Page results
  tab          Toggle help
  esc, ctrl+c  Quit

Configuration:
  Config is stored in %s
  Override with PIZZASEARCH_CONFIG_DIR environment variable.
  Flags take priority over the config file.

Pipe mode prints one line per result list: the matching pizzas joined by
", ", or an empty line when nothing matches. Empty queries print nothing.
Query lines longer than 1 MiB are rejected.

Examples:
  printf 'Pepperoni\nChicken\n' | pizzasearch --pipe --debounce 0
  pizzasearch --ignore-case
`, version, config.Dir())
}
