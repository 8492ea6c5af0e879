package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Konsultn-Engineering/hdbpp/traits"
	"github.com/spf13/cobra"
)

// output writes data as indented JSON, or text verbatim.
func output(w io.Writer, format, text string, data any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

// traitsFlags are the flags selecting one traits combination.
type traitsFlags struct {
	write  string
	format string
	scalar string
}

func (f *traitsFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.write, "write", "read", "write type (read|read_with_write|write|read_write)")
	cmd.Flags().StringVar(&f.format, "format-type", "scalar", "data format (scalar|spectrum|image)")
	cmd.Flags().StringVar(&f.scalar, "type", "devdouble", "scalar type, for example devdouble or dev_ulong64")
}

func (f *traitsFlags) traits() (traits.Traits, error) {
	w, err := traits.ParseWriteType(f.write)
	if err != nil {
		return traits.Traits{}, err
	}
	fm, err := traits.ParseFormatType(f.format)
	if err != nil {
		return traits.Traits{}, err
	}
	s, err := traits.ParseScalarType(f.scalar)
	if err != nil {
		return traits.Traits{}, err
	}
	return traits.New(w, fm, s)
}
