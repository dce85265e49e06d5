// Diagnostic tool for inspecting NPY and NPZ files
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-npy/npy"
)

const (
	flagRow      = "row"
	flagTable    = "table"
	flagVerbose  = "verbose"
	flagParallel = "parallel"
)

// inspectOptions selects what is printed for each array.
type inspectOptions struct {
	row      int // -1 for none
	table    bool
	parallel int
}

func main() {
	logger := zap.NewNop()

	app := &cli.App{
		Name:      "npyinspect",
		Usage:     "print the header and contents of .npy, .npy.zst, .npy.gz and .npz files",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  flagRow,
				Value: -1,
				Usage: "print row `N` of each array",
			},
			&cli.BoolFlag{
				Name:  flagTable,
				Usage: "print each array as a matrix",
			},
			&cli.IntFlag{
				Name:  flagParallel,
				Usage: "open at most `N` files at once (default: number of CPUs)",
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagVerbose) {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			return nil
		},
		After: func(c *cli.Context) error {
			_ = logger.Sync()
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one file is required", 1)
			}
			opts := inspectOptions{
				row:      c.Int(flagRow),
				table:    c.Bool(flagTable),
				parallel: c.Int(flagParallel),
			}
			return run(c.Context, c.App.Writer, c.Args().Slice(), opts, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// run prints every archive member and every plain file. Plain files are
// opened concurrently.
func run(ctx context.Context, w io.Writer, paths []string, opts inspectOptions, logger *zap.Logger) error {
	var plain []string
	for _, path := range paths {
		if !strings.HasSuffix(path, ".npz") {
			plain = append(plain, path)
			continue
		}
		if err := inspectArchive(w, path, opts, logger); err != nil {
			return err
		}
	}

	files, err := npy.OpenMany(ctx, plain, npy.WithLogger(logger), npy.WithParallelism(opts.parallel))
	if err != nil {
		return err
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for _, f := range files {
		if err := inspect(w, f, opts); err != nil {
			return fmt.Errorf("%s: %w", f.Path(), err)
		}
	}
	return nil
}

func inspectArchive(w io.Writer, path string, opts inspectOptions, logger *zap.Logger) error {
	a, err := npy.OpenArchive(path, npy.WithLogger(logger))
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintf(w, "=== Archive %s (%d arrays) ===\n", path, len(a.Names()))
	for _, name := range a.Names() {
		f, err := a.Open(name)
		if err != nil {
			return err
		}
		if err := inspect(w, f, opts); err != nil {
			return fmt.Errorf("%s: %w", f.Path(), err)
		}
	}
	return nil
}

func inspect(w io.Writer, f *npy.File, opts inspectOptions) error {
	meta := f.Metadata()
	fmt.Fprintf(w, "%s:\n", f.Path())
	fmt.Fprintf(w, "  Type:     %s (%s)\n", meta.NumType, meta.NumType.Descr())
	fmt.Fprintf(w, "  Shape:    %d x %d\n", meta.Rows, meta.Cols)
	fmt.Fprintf(w, "  Elements: %d\n", meta.NumElements())

	if opts.row >= 0 {
		row, err := f.Row(opts.row)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Row %d:    %v\n", opts.row, mat.Formatted(row.T(), mat.Squeeze()))
	}

	if opts.table {
		table, err := f.Table()
		if err != nil {
			return err
		}
		if table.IsEmpty() {
			fmt.Fprintf(w, "  Table:    [empty]\n")
			return nil
		}
		fmt.Fprintf(w, "  Table:\n%v\n", mat.Formatted(table, mat.Prefix("    "), mat.Squeeze()))
	}
	return nil
}
