package commands

import (
	"context"
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
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
// Handles both `todoexport export <id>` and the `todoexport <id>` shorthand.
type ExportCmd struct{}

func (c *ExportCmd) Name() string       { return "export" }
func (c *ExportCmd) Aliases() []string  { return nil }
func (c *ExportCmd) Synopsis() string   { return "Export one employee's tasks to <id>.json" }
func (c *ExportCmd) Usage() string      { return "todoexport [export] <user-id>" }
func (c *ExportCmd) NeedsService() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	switch {
	case len(args) == 0:
		fmt.Fprintln(errOut, "error: user id required")
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		return exitcode.UserError
	case len(args) > 1:
		fmt.Fprintf(errOut, "error: too many arguments: %v\n", args[1:])
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		return exitcode.UserError
	}

	id, err := service.ParseUserID(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid user id: %s\n", args[0])
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		return exitcode.UserError
	}

	rep, err := report.NewFetcher(svc, cfg.Logger).Fetch(ctx, id)
	if err != nil {
		return backendError(errOut, err)
	}

	path := cfg.OutputPath(output.UserFileName(id))
	n, err := output.WriteUserReport(path, rep)
	if err != nil {
		fmt.Fprintf(errOut, "error: write %s: %v\n", path, err)
		return exitcode.WriteError
	}
	cfg.Logger.Debug("wrote export",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(n))),
		zap.Int("tasks", len(rep.Records)),
	)

	if !cfg.Quiet {
		output.FormatUserExported(out, id, path)
	}
	return exitcode.Success
}
