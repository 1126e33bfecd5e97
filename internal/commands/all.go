package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"todoexport/internal/config"
	"todoexport/internal/exitcode"
	"todoexport/internal/output"
	"todoexport/internal/report"
	"todoexport/internal/service"
)

func init() {
	Register(&AllCmd{})
}

// AllCmd implements the all command: every employee into one file.
type AllCmd struct {
	outPath    string
	skipErrors bool
	skipEmpty  bool
}

// SetOptions sets the command flags (for testing).
func (c *AllCmd) SetOptions(outPath string, skipErrors, skipEmpty bool) {
	c.outPath = outPath
	c.skipErrors = skipErrors
	c.skipEmpty = skipEmpty
}

func (c *AllCmd) Name() string       { return "all" }
func (c *AllCmd) Aliases() []string  { return []string{"export-all"} }
func (c *AllCmd) Synopsis() string   { return "Export every employee's tasks to one file" }
func (c *AllCmd) Usage() string      { return "todoexport all [--out <file>] [--skip-errors] [--skip-empty]" }
func (c *AllCmd) NeedsService() bool { return true }

func (c *AllCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.outPath, "out", "o", "", "")
	fs.BoolVar(&c.skipErrors, "skip-errors", false, "")
	fs.BoolVar(&c.skipEmpty, "skip-empty", false, "")
}

func (c *AllCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected arguments: %v\n", args)
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		return exitcode.UserError
	}

	res, err := report.NewFetcher(svc, cfg.Logger).FetchAll(ctx, report.BatchOptions{
		SkipErrors: c.skipErrors,
		SkipEmpty:  c.skipEmpty,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(errOut, "error: cancelled")
			return exitcode.BackendError
		}
		return backendError(errOut, err)
	}

	for _, f := range res.Failures {
		output.FormatSkipped(errOut, f.User.ID, f.User.Username, f.Err)
	}

	path := c.outPath
	if path == "" {
		path = cfg.OutputPath(cfg.AllOutputFile)
	}
	n, err := output.WriteAllReports(path, res.Reports)
	if err != nil {
		fmt.Fprintf(errOut, "error: write %s: %v\n", path, err)
		return exitcode.WriteError
	}
	cfg.Logger.Debug("wrote export",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(n))),
		zap.Int("users", len(res.Reports)),
		zap.Int("skipped", len(res.Failures)),
	)

	if !cfg.Quiet {
		output.FormatAllExported(out, path)
	}
	return exitcode.Success
}
