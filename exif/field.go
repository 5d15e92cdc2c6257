package exif

import (
	"fmt"
	"math"
	"strings"

	"github.com/fedragon/exif-codec/exif/entry"
)

// Field holds the values of a single tag. Ascii and Undefined fields carry a
// string; every other type carries a sequence of scalars.
type Field struct {
	tag      entry.ID
	dataType DataType

	text      string
	ints      []int64
	rationals []Rational
}

// NewField returns an empty field. It panics if dataType is not supported.
func NewField(tag entry.ID, dataType DataType) *Field {
	if dataType.Width() == 0 {
		panic(fmt.Sprintf("exif: field %v: unsupported data type %d", tag, uint16(dataType)))
	}
	return &Field{tag: tag, dataType: dataType}
}

func NewTextField(tag entry.ID, dataType DataType, value string) *Field {
	f := NewField(tag, dataType)
	f.SetText(value)
	return f
}

func NewIntField(tag entry.ID, dataType DataType, values ...int64) *Field {
	f := NewField(tag, dataType)
	for _, v := range values {
		f.AppendInt(v)
	}
	return f
}

func NewRationalField(tag entry.ID, dataType DataType, values ...Rational) *Field {
	f := NewField(tag, dataType)
	for _, v := range values {
		f.AppendRational(v)
	}
	return f
}

func (f *Field) Tag() entry.ID {
	return f.tag
}

func (f *Field) Type() DataType {
	return f.dataType
}

// SetText sets the value of an Ascii or Undefined field.
func (f *Field) SetText(value string) {
	if !f.dataType.IsText() {
		panic(fmt.Sprintf("exif: field %v: cannot set text on %v field", f.tag, f.dataType))
	}
	f.text = value
}

// AppendInt appends a scalar to an integer-typed field. The value must fit
// the field's type.
func (f *Field) AppendInt(value int64) {
	if !f.dataType.IsInteger() {
		panic(fmt.Sprintf("exif: field %v: cannot append integer to %v field", f.tag, f.dataType))
	}
	if !fits(f.dataType, value) {
		panic(fmt.Sprintf("exif: field %v: integer %d out of range for %v field", f.tag, value, f.dataType))
	}
	f.ints = append(f.ints, value)
}

func fits(dataType DataType, v int64) bool {
	switch dataType {
	case DataTypeByte:
		return v >= 0 && v <= math.MaxUint8
	case DataTypeSignedByte:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case DataTypeShort:
		return v >= 0 && v <= math.MaxUint16
	case DataTypeLong:
		return v >= 0 && v <= math.MaxUint32
	case DataTypeSignedLong:
		return v >= math.MinInt32 && v <= math.MaxInt32
	}
	return false
}

// AppendRational appends a scalar to a rational-typed field.
func (f *Field) AppendRational(value Rational) {
	if !f.dataType.IsRational() {
		panic(fmt.Sprintf("exif: field %v: cannot append rational to %v field", f.tag, f.dataType))
	}
	f.rationals = append(f.rationals, value)
}

// Text returns the string value of an Ascii or Undefined field, without any terminator.
func (f *Field) Text() string {
	if !f.dataType.IsText() {
		panic(fmt.Sprintf("exif: field %v: %v field has no text value", f.tag, f.dataType))
	}
	return f.text
}

// Int returns the i-th scalar of an integer-typed field.
func (f *Field) Int(i int) int64 {
	if !f.dataType.IsInteger() {
		panic(fmt.Sprintf("exif: field %v: %v field has no integer values", f.tag, f.dataType))
	}
	return f.ints[i]
}

// Rational returns the i-th scalar of a rational-typed field.
func (f *Field) Rational(i int) Rational {
	if !f.dataType.IsRational() {
		panic(fmt.Sprintf("exif: field %v: %v field has no rational values", f.tag, f.dataType))
	}
	return f.rationals[i]
}

// Clone returns a copy of f that shares no values with it.
func (f *Field) Clone() *Field {
	c := *f
	c.ints = append([]int64(nil), f.ints...)
	c.rationals = append([]Rational(nil), f.rationals...)
	return &c
}

// Len returns the number of scalars, or the number of bytes of a text value.
func (f *Field) Len() int {
	switch {
	case f.dataType.IsText():
		return len(f.text)
	case f.dataType.IsRational():
		return len(f.rationals)
	default:
		return len(f.ints)
	}
}

// Count returns the value count as written in the directory record: the
// string length plus the implicit terminator for Ascii, the number of
// elements otherwise.
func (f *Field) Count() uint32 {
	if f.dataType == DataTypeAscii {
		return uint32(len(f.text)) + 1
	}
	return uint32(f.Len())
}

// ByteLength returns the size of the encoded value.
func (f *Field) ByteLength() uint32 {
	return f.Count() * f.dataType.Width()
}

// Equal reports whether both fields have the same tag, type and values.
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.tag != other.tag || f.dataType != other.dataType || f.text != other.text {
		return false
	}
	if len(f.ints) != len(other.ints) || len(f.rationals) != len(other.rationals) {
		return false
	}
	for i := range f.ints {
		if f.ints[i] != other.ints[i] {
			return false
		}
	}
	for i := range f.rationals {
		if f.rationals[i] != other.rationals[i] {
			return false
		}
	}
	return true
}

func (f *Field) String() string {
	var value string
	switch {
	case f.dataType.IsText():
		value = fmt.Sprintf("%q", f.text)
	case f.dataType.IsRational():
		parts := make([]string, len(f.rationals))
		for i, r := range f.rationals {
			parts[i] = r.String()
		}
		value = strings.Join(parts, " ")
	default:
		parts := make([]string, len(f.ints))
		for i, v := range f.ints {
			parts[i] = fmt.Sprint(v)
		}
		value = strings.Join(parts, " ")
	}
	return fmt.Sprintf("%v (%v, count %d): %s", f.tag, f.dataType, f.Count(), value)
}
