// Package cli implements hdbppq, a diagnostics tool printing the table names
// and SQL the archive query layer generates.
package cli

import (
	"fmt"

	"github.com/Konsultn-Engineering/hdbpp/config"
	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"

	cfg config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "hdbppq",
		Short:         "Inspect HDB++ archive statements",
		Long:          "Print the data table names and parameterized SQL used to archive Tango attributes in TimescaleDB.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			config.InitLogging(cfg.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewStatementCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}

func (o *RootOptions) builder() (*query.Builder, error) {
	return query.NewBuilder(o.cfg.BuilderOptions()...)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
