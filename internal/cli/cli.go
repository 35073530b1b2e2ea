// Package cli wires the batch driver and the result-matrix renderer into a
// urfave/cli/v2 command surface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bran/ddsolve/internal/batch"
	"github.com/bran/ddsolve/internal/ddcard"
	"github.com/bran/ddsolve/internal/ddsolve"
	"github.com/bran/ddsolve/internal/deal"
	"github.com/bran/ddsolve/internal/render"
)

// New builds the ddsolve command-line app.
func New() *cli.App {
	return &cli.App{
		Name:    "ddsolve",
		Usage:   "compute double-dummy bridge results for a file of deals",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "deals",
				Aliases:  []string{"f"},
				Usage:    "path to a deal file",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "trump",
				Usage: "restrict the sweep to these trumps (C, D, H, S, NT); default all five",
			},
			&cli.StringSliceFlag{
				Name:  "leader",
				Usage: "restrict the sweep to these opening leaders (N, E, S, W); default all four",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "disable the transposition cache entirely",
			},
			&cli.BoolFlag{
				Name:  "simplify",
				Usage: "enable the rank-squeeze cache canonicalization",
			},
			&cli.IntFlag{
				Name:  "progress-every",
				Usage: "log a progress line every N recursive calls (0 disables)",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	path := c.String("deals")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	inputs, err := deal.ParseFile(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: some deals in %s were skipped:\n%v\n", path, err)
	}

	filter, err := buildFilter(c)
	if err != nil {
		return err
	}

	opts := ddsolve.Options{DisableCache: c.Bool("no-cache")}
	if n := c.Int("progress-every"); n > 0 {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		opts.ProgressEvery = n
	}

	results, err := batch.RunFile(inputs, filter, c.Bool("simplify"), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: some deals failed to solve:\n%v\n", err)
	}

	for _, r := range results {
		fmt.Printf("deal %d\n", r.Index)
		fmt.Println(render.Matrix(r.Matrix, r.Mismatch))
		if r.Mismatch != nil {
			fmt.Fprintln(os.Stderr, render.Mismatch(r.Mismatch))
		}
		fmt.Printf("iterations=%d cache_hits=%d cache_misses=%d cache_reused=%d\n\n",
			r.Stats.Iterations, r.Stats.CacheHits, r.Stats.CacheMisses, r.Stats.CacheReused)
	}

	if len(results) == 0 {
		return fmt.Errorf("no deal in %s solved successfully", path)
	}
	return nil
}

func buildFilter(c *cli.Context) (batch.Filter, error) {
	var filter batch.Filter
	for _, tok := range c.StringSlice("trump") {
		t, err := ddcard.ParseTrump(strings.ToUpper(tok))
		if err != nil {
			return filter, fmt.Errorf("--trump %q: %w", tok, err)
		}
		filter.Trumps = append(filter.Trumps, t)
	}
	for _, tok := range c.StringSlice("leader") {
		s, err := ddcard.ParseSide(strings.ToUpper(tok))
		if err != nil {
			return filter, fmt.Errorf("--leader %q: %w", tok, err)
		}
		filter.Leaders = append(filter.Leaders, s)
	}
	return filter, nil
}
