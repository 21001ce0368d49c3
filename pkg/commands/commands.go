package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/listplan/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "listplan",
		Short: base.Wrap80("Checklists and a weekly planner on the command line."),
		Long: base.Wrap80("Checklists and a weekly planner on the command line. " +
			"Run without arguments on a terminal to open the interactive view."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !oo.JSON && isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd()) {
				return runUI(cmd)
			}
			return runShow(cmd, &showOptions{})
		},
	}

	options.AddLogArgs(cmd, lo)

	AddCommands(cmd)
	addOutputArgs(cmd)
	return cmd
}

// addOutputArgs registers --json on cmd and every command below it.
func addOutputArgs(cmd *cobra.Command) {
	base.AddOutputArg(cmd, oo)
	for _, sub := range cmd.Commands() {
		addOutputArgs(sub)
	}
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addCategory(topLevel)
	addItem(topLevel)
	addPlanner(topLevel)
	addDoctor(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
