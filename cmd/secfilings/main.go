package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/Guest400123064/parse-sec-filings/extract"
	"github.com/Guest400123064/parse-sec-filings/goquery"
	"github.com/Guest400123064/parse-sec-filings/htmltomarkdown"
	secslog "github.com/Guest400123064/parse-sec-filings/slog"
	"github.com/Guest400123064/parse-sec-filings/sqlite"
	"github.com/Guest400123064/parse-sec-filings/trafilatura"
	"github.com/alecthomas/kong"
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
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ExtractionService secfilings.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("secfilings"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'secfilings --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	if cmd == "extract" && cli.Extract.DB != "" {
		m.DBPath = cli.Extract.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SECFILINGS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ExtractionService = sqlite.NewExtractionService(m.DB)
	deps.DB = m.DB
	deps.Extractions = m.ExtractionService

	// Wire the extraction pipeline based on command
	if cmd == "extract" {
		logger, closeLog, err := newLogger(cli.Extract.Log, stderr)
		if err != nil {
			return fmt.Errorf("failed to open log file at %q: %w", cli.Extract.Log, err)
		}
		defer closeLog()

		pipeline := &extract.Pipeline{
			Locator:   secslog.NewLoggingLocator(goquery.NewLocator(), logger),
			Converter: secslog.NewLoggingConverter(trafilatura.NewConverter(), logger),
			Section:   secfilings.Item1A(),
			Logger:    logger,
		}
		if cli.Extract.Format == "markdown" {
			pipeline.Markdown = htmltomarkdown.NewConverter()
		}

		deps.Runner = &extract.Runner{
			Pipeline:    pipeline,
			Extractions: m.ExtractionService,
			Concurrency: cli.Extract.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// newLogger builds the audit logger. With a log path it writes JSON
// lines there; otherwise warnings and errors go to stderr as text.
func newLogger(path string, stderr io.Writer) (*slog.Logger, func() error, error) {
	if path == "" {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(handler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, nil)), f.Close, nil
}

func defaultDBPath() string {
	if path := os.Getenv("SECFILINGS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "secfilings.db"
	}
	dir := filepath.Join(home, ".secfilings")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "secfilings.db")
}
