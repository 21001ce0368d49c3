package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/listplan/pkg/runner/doctor"
)

func addDoctor(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Inspect the stored data without changing it.",
		Long: `Inspect every storage slot, current and legacy, and report which
ones match the current schema and what loading will repair or migrate.`,
		Example: `
listplan doctor
listplan doctor --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()

			d := doctor.Doctor{
				JSON:    oo.JSON,
				Storage: e.Storage,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(d.Do())
		},
	}

	topLevel.AddCommand(cmd)
}
