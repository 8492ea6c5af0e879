package query

import (
	"fmt"

	"github.com/Konsultn-Engineering/hdbpp/dialect"
	"github.com/Konsultn-Engineering/hdbpp/schema"
	"github.com/Konsultn-Engineering/hdbpp/traits"
)

// TableName returns the data table for t: prefix, format fragment, "_", type
// fragment. The write type does not take part, read and write values share a
// table. Unsupported traits are an error, never a placeholder name.
func TableName(t traits.Traits) (string, error) {
	format, err := formatFragment(t.FormatType())
	if err != nil {
		return "", err
	}
	typ, err := typeFragment(t.Type())
	if err != nil {
		return "", err
	}
	return schema.SchemaTablePrefix + format + "_" + typ, nil
}

func formatFragment(f traits.FormatType) (string, error) {
	switch f {
	case traits.Scalar:
		return schema.TypeScalar, nil
	case traits.Spectrum:
		return schema.TypeArray, nil
	case traits.Image:
		return schema.TypeImage, nil
	}
	return "", fmt.Errorf("%w: no table for format %s", traits.ErrUnsupported, f)
}

func typeFragment(s traits.ScalarType) (string, error) {
	switch s {
	case traits.DevDouble:
		return schema.TypeDevDouble, nil
	case traits.DevFloat:
		return schema.TypeDevFloat, nil
	case traits.DevString:
		return schema.TypeDevString, nil
	case traits.DevLong:
		return schema.TypeDevLong, nil
	case traits.DevULong:
		return schema.TypeDevUlong, nil
	case traits.DevLong64:
		return schema.TypeDevLong64, nil
	case traits.DevULong64:
		return schema.TypeDevUlong64, nil
	case traits.DevShort:
		return schema.TypeDevShort, nil
	case traits.DevUShort:
		return schema.TypeDevUshort, nil
	case traits.DevBoolean:
		return schema.TypeDevBoolean, nil
	case traits.DevUChar:
		return schema.TypeDevUchar, nil
	case traits.DevState:
		return schema.TypeDevState, nil
	case traits.DevEncoded:
		return schema.TypeDevEncoded, nil
	case traits.DevEnum:
		return schema.TypeDevEnum, nil
	}
	return "", fmt.Errorf("%w: no table for type %s", traits.ErrUnsupported, s)
}

// castKind maps a scalar type onto the value kind bound to its data columns.
// Enums are stored as their int16 index, encoded values as raw bytes.
func castKind(s traits.ScalarType) (dialect.Kind, error) {
	switch s {
	case traits.DevDouble:
		return dialect.Double, nil
	case traits.DevFloat:
		return dialect.Float, nil
	case traits.DevString:
		return dialect.Text, nil
	case traits.DevBoolean:
		return dialect.Bool, nil
	case traits.DevShort, traits.DevEnum:
		return dialect.Int16, nil
	case traits.DevUShort:
		return dialect.Uint16, nil
	case traits.DevLong:
		return dialect.Int32, nil
	case traits.DevULong:
		return dialect.Uint32, nil
	case traits.DevLong64:
		return dialect.Int64, nil
	case traits.DevULong64:
		return dialect.Uint64, nil
	case traits.DevUChar:
		return dialect.Byte, nil
	case traits.DevEncoded:
		return dialect.ByteArray, nil
	case traits.DevState:
		return dialect.State, nil
	}
	return 0, fmt.Errorf("%w: no cast for type %s", traits.ErrUnsupported, s)
}
