package traits

import (
	"fmt"
	"strings"
)

var writeNames = map[WriteType]string{
	Read:          "READ",
	ReadWithWrite: "READ_WITH_WRITE",
	Write:         "WRITE",
	ReadWrite:     "READ_WRITE",
}

var formatNames = map[FormatType]string{
	Scalar:   "SCALAR",
	Spectrum: "SPECTRUM",
	Image:    "IMAGE",
}

var scalarNames = map[ScalarType]string{
	DevBoolean: "DEV_BOOLEAN",
	DevShort:   "DEV_SHORT",
	DevLong:    "DEV_LONG",
	DevFloat:   "DEV_FLOAT",
	DevDouble:  "DEV_DOUBLE",
	DevUShort:  "DEV_USHORT",
	DevULong:   "DEV_ULONG",
	DevString:  "DEV_STRING",
	DevState:   "DEV_STATE",
	DevUChar:   "DEV_UCHAR",
	DevLong64:  "DEV_LONG64",
	DevULong64: "DEV_ULONG64",
	DevEncoded: "DEV_ENCODED",
	DevEnum:    "DEV_ENUM",
}

func (w WriteType) Valid() bool  { _, ok := writeNames[w]; return ok }
func (f FormatType) Valid() bool { _, ok := formatNames[f]; return ok }
func (s ScalarType) Valid() bool { _, ok := scalarNames[s]; return ok }

func (w WriteType) String() string {
	if n, ok := writeNames[w]; ok {
		return n
	}
	return fmt.Sprintf("WriteType(%d)", int32(w))
}

func (f FormatType) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("FormatType(%d)", int32(f))
}

func (s ScalarType) String() string {
	if n, ok := scalarNames[s]; ok {
		return n
	}
	return fmt.Sprintf("ScalarType(%d)", int32(s))
}

// ParseWriteType accepts the control system name ("READ_WRITE") case
// insensitively, with dashes allowed in place of underscores.
func ParseWriteType(s string) (WriteType, error) {
	key := normalize(s)
	for w, n := range writeNames {
		if n == key {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: write type %q", ErrUnsupported, s)
}

// ParseFormatType accepts "SCALAR", "SPECTRUM" or "IMAGE", and "array" as an
// alias for SPECTRUM.
func ParseFormatType(s string) (FormatType, error) {
	key := normalize(s)
	if key == "ARRAY" {
		return Spectrum, nil
	}
	for f, n := range formatNames {
		if n == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: format type %q", ErrUnsupported, s)
}

// ParseScalarType accepts "DEV_DOUBLE", "dev-double", "devdouble" or "double".
func ParseScalarType(s string) (ScalarType, error) {
	key := strings.ReplaceAll(normalize(s), "_", "")
	key = strings.TrimPrefix(key, "DEV")
	for t, n := range scalarNames {
		if strings.TrimPrefix(strings.ReplaceAll(n, "_", ""), "DEV") == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: scalar type %q", ErrUnsupported, s)
}

func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}
