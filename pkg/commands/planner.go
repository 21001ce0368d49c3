package commands

import (
	"errors"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/listplan/pkg/commands/options"
	"tableflip.dev/listplan/pkg/runner/plan"
	"tableflip.dev/listplan/pkg/state"
)

func addPlanner(topLevel *cobra.Command) {
	wo := &options.WeekOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "planner",
		Aliases: []string{"plan", "week"},
		Short:   "Show or edit the weekly planner.",
		Example: `
listplan planner
listplan planner week --week 1
listplan planner set --on 2024-1-22 dentist at 9
listplan planner set --on tomorrow --worked
listplan planner worked --on today
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPlan(cmd, func(p *plan.Plan) error {
				return p.Week(wo.Offset)
			})
		},
	}
	options.AddWeekArgs(cmd, wo)

	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Show a planner week.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPlan(cmd, func(p *plan.Plan) error {
				return p.Week(wo.Offset)
			})
		},
	}
	options.AddWeekArgs(weekCmd, wo)
	cmd.AddCommand(weekCmd)

	var worked, idle, clearNote bool
	setCmd := &cobra.Command{
		Use:   "set [note]",
		Short: "Set the note or the worked flag of a day.",
		Long: base.Wrap80("Set the note or the worked flag of a day. Fields " +
			"that are not given keep their value."),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 && !worked && !idle && !clearNote {
				return errors.New("requires a note, --worked, --idle or --clear")
			}
			if worked && idle {
				return errors.New("--worked and --idle are exclusive")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := on.Key(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			patch := state.DayPatch{}
			if len(args) > 0 || clearNote {
				note := strings.Join(args, " ")
				patch.Note = &note
			}
			if worked || idle {
				w := worked
				patch.Worked = &w
			}
			return withPlan(cmd, func(p *plan.Plan) error {
				return p.Set(key, patch)
			})
		},
	}
	options.AddOnArgs(setCmd, on)
	setCmd.Flags().BoolVar(&worked, "worked", false, "Mark the day as worked.")
	setCmd.Flags().BoolVar(&idle, "idle", false, "Mark the day as not worked.")
	setCmd.Flags().BoolVar(&clearNote, "clear", false, "Clear the note.")
	cmd.AddCommand(setCmd)

	workedCmd := &cobra.Command{
		Use:   "worked",
		Short: "Flip the worked flag of a day.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := on.Key(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			return withPlan(cmd, func(p *plan.Plan) error {
				return p.Worked(key)
			})
		},
	}
	options.AddOnArgs(workedCmd, on)
	cmd.AddCommand(workedCmd)

	topLevel.AddCommand(cmd)
}

func withPlan(cmd *cobra.Command, fn func(*plan.Plan) error) error {
	e, err := loadEnv()
	if err != nil {
		return oo.HandleError(err)
	}
	defer e.Close()

	p := &plan.Plan{
		JSON:    oo.JSON,
		Service: e.Service,
		Out:     cmd.OutOrStdout(),
	}
	return oo.HandleError(fn(p))
}
