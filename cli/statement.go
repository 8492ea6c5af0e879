package cli

import (
	"fmt"
	"sort"

	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/Konsultn-Engineering/hdbpp/traits"
	"github.com/spf13/cobra"
)

// Statement families that need traits.
const (
	familyDataEvent          = "data-event"
	familyDataEventError     = "data-event-error"
	familyDataEventName      = "data-event-name"
	familyDataEventErrorName = "data-event-error-name"
)

type statementResult struct {
	Family    string `json:"family"`
	Traits    string `json:"traits,omitempty"`
	Statement string `json:"statement"`
}

func traitsFamilies() map[string]func(*query.Builder, traits.Traits) (string, error) {
	return map[string]func(*query.Builder, traits.Traits) (string, error){
		familyDataEvent:          (*query.Builder).StoreDataEventStatement,
		familyDataEventError:     (*query.Builder).StoreDataEventErrorStatement,
		familyDataEventName:      (*query.Builder).StoreDataEventName,
		familyDataEventErrorName: (*query.Builder).StoreDataEventErrorName,
	}
}

// Families lists every family the statement command accepts, sorted.
func Families() []string {
	var names []string
	for _, s := range query.StableStatements() {
		names = append(names, s.Name)
	}
	for name := range traitsFamilies() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewStatementCommand(rootOpts *RootOptions) *cobra.Command {
	var flags traitsFlags

	cmd := &cobra.Command{
		Use:          "statement <family>",
		Short:        "Print one generated statement",
		Long:         fmt.Sprintf("Print one generated statement. Families: %v", Families()),
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			family := args[0]

			for _, s := range query.StableStatements() {
				if s.Name == family {
					return output(cmd.OutOrStdout(), rootOpts.Format, s.SQL, statementResult{Family: family, Statement: s.SQL})
				}
			}

			build, ok := traitsFamilies()[family]
			if !ok {
				return fmt.Errorf("unknown statement family %q: must be one of %v", family, Families())
			}

			t, err := flags.traits()
			if err != nil {
				return err
			}
			b, err := rootOpts.builder()
			if err != nil {
				return err
			}
			stmt, err := build(b, t)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), rootOpts.Format, stmt, statementResult{Family: family, Traits: t.String(), Statement: stmt})
		},
	}
	flags.bind(cmd)

	return cmd
}
