package cli

import (
	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/spf13/cobra"
)

type tableResult struct {
	Traits string `json:"traits"`
	Table  string `json:"table"`
}

func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	var flags traitsFlags

	cmd := &cobra.Command{
		Use:          "table",
		Short:        "Print the data table for a traits combination",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.traits()
			if err != nil {
				return err
			}
			table, err := query.TableName(t)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), rootOpts.Format, table, tableResult{Traits: t.String(), Table: table})
		},
	}
	flags.bind(cmd)

	return cmd
}
