package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/listplan/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(listplan completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(listplan completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletionV2(os.Stdout, true)
		},
	}

	topLevel.AddCommand(cmd)
}

// categoryCompletions suggests list names starting with toComplete.
func categoryCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := store.Open(nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer store.Close(s)

	st := store.NewGateway(s, nil).Load()
	var out []string
	for _, c := range st.Lists() {
		if strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(toComplete)) {
			name := c.Name
			if strings.ContainsAny(name, " \t") {
				name = strconv.Quote(name)
			}
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
