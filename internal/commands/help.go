package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"todoexport/internal/config"
	"todoexport/internal/exitcode"
	"todoexport/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todoexport help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-10s %s\n", cmd.Name(), cmd.Synopsis())
	}
	return exitcode.Success
}

// HelpText is printed by the help command.
const HelpText = `Usage:
  todoexport <user-id>                          Export one employee to <user-id>.json
  todoexport export [common flags] <user-id>
  todoexport all [common flags] [--out <file>] [--skip-errors] [--skip-empty]
  todoexport help
  todoexport version

Common flags:
  --config <dir>       Override config directory
  --base-url <url>     Override API base URL
  --timeout <dur>      Per-request timeout (default 10s)
  --output-dir <dir>   Directory for export files
  --quiet              Suppress informational output
  --debug              Print debug logs to stderr
`

// UsageLine is printed when no arguments are given.
const UsageLine = "usage: todoexport <user-id> (see: todoexport help)"
