package cli

import (
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/Konsultn-Engineering/hdbpp/traits"
	pluralizer "github.com/gertd/go-pluralize"
	"github.com/spf13/cobra"
)

var pluralize = pluralizer.NewClient()

type dumpEntry struct {
	Traits         string `json:"traits"`
	Table          string `json:"table"`
	Name           string `json:"name"`
	Statement      string `json:"statement"`
	ErrorName      string `json:"error_name"`
	ErrorStatement string `json:"error_statement"`
}

type dumpResult struct {
	Stable  []query.NamedStatement `json:"stable"`
	Traits  []dumpEntry            `json:"traits"`
	Tables  int                    `json:"tables"`
	Builder string                 `json:"builder"`
}

func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dump",
		Short:        "Print every table name and statement",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := rootOpts.builder()
			if err != nil {
				return err
			}
			res, err := dump(b)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), rootOpts.Format, res.text(), res)
		},
	}

	return cmd
}

func dump(b *query.Builder) (dumpResult, error) {
	res := dumpResult{Stable: query.StableStatements()}
	tables := map[string]bool{}

	for _, t := range traits.All() {
		e := dumpEntry{Traits: t.String()}
		var err error

		if e.Table, err = query.TableName(t); err != nil {
			return dumpResult{}, err
		}
		if e.Name, err = b.StoreDataEventName(t); err != nil {
			return dumpResult{}, err
		}
		if e.Statement, err = b.StoreDataEventStatement(t); err != nil {
			return dumpResult{}, err
		}
		if e.ErrorName, err = b.StoreDataEventErrorName(t); err != nil {
			return dumpResult{}, err
		}
		if e.ErrorStatement, err = b.StoreDataEventErrorStatement(t); err != nil {
			return dumpResult{}, err
		}

		tables[e.Table] = true
		res.Traits = append(res.Traits, e)
	}

	res.Tables = len(tables)
	res.Builder = b.String()
	return res, nil
}

func (r dumpResult) text() string {
	var sb strings.Builder

	for _, s := range r.Stable {
		fmt.Fprintf(&sb, "-- %s\n%s\n", s.Name, s.SQL)
	}
	for _, e := range r.Traits {
		fmt.Fprintf(&sb, "\n-- %s -> %s\n", e.Traits, e.Table)
		fmt.Fprintf(&sb, "%s: %s\n", e.Name, e.Statement)
		fmt.Fprintf(&sb, "%s: %s\n", e.ErrorName, e.ErrorStatement)
	}

	fmt.Fprintf(&sb, "\n%s over %s\n%s",
		pluralize.Pluralize("combination", len(r.Traits), true),
		pluralize.Pluralize("table", r.Tables, true),
		r.Builder)
	return sb.String()
}
