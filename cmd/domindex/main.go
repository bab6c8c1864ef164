package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/domindex"
	"github.com/fwojciec/domindex/goquery"
	"github.com/fwojciec/domindex/mem"
	domslog "github.com/fwojciec/domindex/slog"
	"github.com/fwojciec/domindex/trafilatura"
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
	// Stores shared across commands within one run. Set before calling
	// Run() to inject alternatives in tests; defaults are created lazily.
	Cache    domindex.ResultCache
	Sessions domindex.SessionStore

	// Stdin is the input used for the "-" path. Defaults to os.Stdin.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  m.Stdin,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("domindex"),
		kong.Description("Index HTML documents into a structured, queryable form."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'domindex --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Cache == nil {
		m.Cache = mem.NewCache()
	}
	if m.Sessions == nil {
		m.Sessions = mem.NewSessions()
	}
	deps.Cache = domslog.NewLoggingCache(m.Cache, logger)
	deps.Sessions = domslog.NewLoggingSessions(m.Sessions, logger)

	if cli.Enrich {
		deps.Summarizer = trafilatura.NewSummarizer()
	} else {
		deps.Summarizer = goquery.NewSummarizer()
	}

	return kongCtx.Run()
}
