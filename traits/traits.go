// Package traits describes the storage shape of an archived attribute: how it
// is written, its data format and its scalar type. The numeric values of the
// enums are the control system's own and are part of the stored data.
package traits

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupported is returned for a write type, format or scalar type the
// archive schema has no table for.
var ErrUnsupported = errors.New("unsupported attribute traits")

type WriteType int32

const (
	Read          WriteType = 0
	ReadWithWrite WriteType = 1
	Write         WriteType = 2
	ReadWrite     WriteType = 3
)

type FormatType int32

const (
	Scalar   FormatType = 0
	Spectrum FormatType = 1
	Image    FormatType = 2
)

type ScalarType int32

const (
	DevBoolean ScalarType = 1
	DevShort   ScalarType = 2
	DevLong    ScalarType = 3
	DevFloat   ScalarType = 4
	DevDouble  ScalarType = 5
	DevUShort  ScalarType = 6
	DevULong   ScalarType = 7
	DevString  ScalarType = 8
	DevState   ScalarType = 19
	DevUChar   ScalarType = 22
	DevLong64  ScalarType = 23
	DevULong64 ScalarType = 24
	DevEncoded ScalarType = 28
	DevEnum    ScalarType = 29
)

var (
	WriteTypes  = []WriteType{Read, ReadWithWrite, Write, ReadWrite}
	FormatTypes = []FormatType{Scalar, Spectrum, Image}
	ScalarTypes = []ScalarType{
		DevBoolean, DevShort, DevLong, DevFloat, DevDouble, DevUShort, DevULong,
		DevString, DevState, DevUChar, DevLong64, DevULong64, DevEncoded, DevEnum,
	}
)

// Traits is the (write, format, type) triple of an attribute. It is comparable
// and used directly as a map key.
type Traits struct {
	write  WriteType
	format FormatType
	scalar ScalarType
}

// New builds Traits, rejecting any component outside the supported sets.
func New(w WriteType, f FormatType, s ScalarType) (Traits, error) {
	if !w.Valid() {
		return Traits{}, fmt.Errorf("%w: write type %d", ErrUnsupported, int32(w))
	}
	if !f.Valid() {
		return Traits{}, fmt.Errorf("%w: format type %d", ErrUnsupported, int32(f))
	}
	if !s.Valid() {
		return Traits{}, fmt.Errorf("%w: scalar type %d", ErrUnsupported, int32(s))
	}
	return Traits{write: w, format: f, scalar: s}, nil
}

// MustNew is New for statically known traits.
func MustNew(w WriteType, f FormatType, s ScalarType) Traits {
	t, err := New(w, f, s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromNumbers rebuilds Traits from the (type, format, write) numbers stored in
// the configuration tables.
func FromNumbers(typeNum, formatNum, writeNum int32) (Traits, error) {
	return New(WriteType(writeNum), FormatType(formatNum), ScalarType(typeNum))
}

func (t Traits) WriteType() WriteType   { return t.write }
func (t Traits) FormatType() FormatType { return t.format }
func (t Traits) Type() ScalarType       { return t.scalar }

// Valid reports whether every component is supported. The zero Traits is not
// valid.
func (t Traits) Valid() bool {
	return t.write.Valid() && t.format.Valid() && t.scalar.Valid()
}

// Check returns nil for valid traits and a wrapped ErrUnsupported otherwise.
func (t Traits) Check() error {
	_, err := New(t.write, t.format, t.scalar)
	return err
}

func (t Traits) IsArray() bool  { return t.format != Scalar }
func (t Traits) IsScalar() bool { return t.format == Scalar }
func (t Traits) IsImage() bool  { return t.format == Image }

// HasReadData reports whether events carry a read value.
func (t Traits) HasReadData() bool { return t.write != Write }

// HasWriteData reports whether events carry a set point.
func (t Traits) HasWriteData() bool { return t.write != Read }

// Less orders by format, then type, then write type.
func (t Traits) Less(o Traits) bool {
	if t.format != o.format {
		return t.format < o.format
	}
	if t.scalar != o.scalar {
		return t.scalar < o.scalar
	}
	return t.write < o.write
}

func (t Traits) String() string {
	return fmt.Sprintf("Traits(write: %s, format: %s, type: %s)", t.write, t.format, t.scalar)
}

// All enumerates every supported combination in Less order.
func All() []Traits {
	all := make([]Traits, 0, len(WriteTypes)*len(FormatTypes)*len(ScalarTypes))
	for _, f := range FormatTypes {
		for _, s := range ScalarTypes {
			for _, w := range WriteTypes {
				all = append(all, Traits{write: w, format: f, scalar: s})
			}
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Less(all[j]) })
	return all
}
