package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

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
	// Candidate index file locations used by the patch and search
	// commands. Set before calling Run().
	IndexCandidates []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		IndexCandidates: defaultIndexCandidates(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:             ctx,
		Stdout:          stdout,
		Stderr:          stderr,
		IndexCandidates: m.IndexCandidates,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docindex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docindex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	return kongCtx.Run(deps)
}

// defaultIndexCandidates returns the index file locations checked by the
// patch and search commands. DOCINDEX_INDEX overrides the built-in list;
// it may hold several paths separated by the OS path list separator.
func defaultIndexCandidates() []string {
	if env := os.Getenv("DOCINDEX_INDEX"); env != "" {
		var paths []string
		for _, p := range strings.Split(env, string(os.PathListSeparator)) {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		return paths
	}
	return []string{
		"build/search-index.db",
		"dist/search-index.db",
	}
}
