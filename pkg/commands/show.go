package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/listplan/pkg/commands/options"
	"tableflip.dev/listplan/pkg/runner/show"
)

type showOptions struct {
	co     options.CategoryOptions
	io     options.IDOptions
	follow bool
}

func addShow(topLevel *cobra.Command) {
	so := &showOptions{}

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"get", "ls"},
		Short:   "Show the items of a list.",
		Example: `
listplan show
listplan show --list Shop
listplan show --all --show-id
listplan show --follow
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, so)
		},
	}

	options.AddCategoryArgs(cmd, &so.co)
	options.AddAllCategoriesArg(cmd, &so.co)
	options.AddShowIDArgs(cmd, &so.io)
	_ = cmd.RegisterFlagCompletionFunc("list", categoryCompletions)
	cmd.Flags().BoolVarP(&so.follow, "follow", "f", false,
		"Keep running and print again whenever the lists change.")

	topLevel.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, so *showOptions) error {
	e, err := loadEnv()
	if err != nil {
		return oo.HandleError(err)
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := show.Show{
		ShowID:   so.io.ShowID,
		JSON:     oo.JSON,
		All:      so.co.All,
		Category: so.co.Category,
		Follow:   so.follow,
		Service:  e.Service,
		Out:      cmd.OutOrStdout(),
	}
	return oo.HandleError(s.Do(ctx))
}
