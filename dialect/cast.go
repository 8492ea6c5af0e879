package dialect

import "fmt"

// Kind is a value kind that can be bound to a data column.
type Kind uint8

const (
	Double Kind = iota
	Float
	Text
	Bool
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Byte
	ByteArray
	State
)

// Kinds lists every kind the cast table covers.
var Kinds = []Kind{Double, Float, Text, Bool, Int16, Uint16, Int32, Uint32, Int64, Uint64, Byte, ByteArray, State}

// The unsigned kinds map onto domains defined by the archive schema, postgres
// has no native unsigned integers.
var postgresCasts = [...]string{
	Double:    "float8",
	Float:     "float4",
	Text:      "text",
	Bool:      "bool",
	Int16:     "int2",
	Uint16:    "ushort",
	Int32:     "int4",
	Uint32:    "ulong",
	Int64:     "int8",
	Uint64:    "ulong64",
	Byte:      "uchar",
	ByteArray: "bytea",
	State:     "int4",
}

// Cast returns the postgres cast token for kind, with an array suffix when
// isArray is set. An unknown kind is a programming error and panics.
func Cast(kind Kind, isArray bool) string {
	if int(kind) >= len(postgresCasts) {
		panic(fmt.Sprintf("dialect: no postgres cast for kind %d", kind))
	}
	if isArray {
		return postgresCasts[kind] + "[]"
	}
	return postgresCasts[kind]
}

func (k Kind) String() string {
	switch k {
	case Double:
		return "double"
	case Float:
		return "float"
	case Text:
		return "text"
	case Bool:
		return "bool"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Byte:
		return "byte"
	case ByteArray:
		return "bytearray"
	case State:
		return "state"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
