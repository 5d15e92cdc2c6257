package exif

import "fmt"

// DataType is the wire encoding of a field's values.
type DataType uint16

const (
	DataTypeByte           DataType = 1
	DataTypeAscii          DataType = 2
	DataTypeShort          DataType = 3
	DataTypeLong           DataType = 4
	DataTypeRational       DataType = 5
	DataTypeSignedByte     DataType = 6
	DataTypeUndefined      DataType = 7
	DataTypeSignedLong     DataType = 9
	DataTypeSignedRational DataType = 10
)

// widths is indexed by type tag; a zero width marks an unsupported tag.
var widths = [...]uint32{
	DataTypeByte:           1,
	DataTypeAscii:          1,
	DataTypeShort:          2,
	DataTypeLong:           4,
	DataTypeRational:       8,
	DataTypeSignedByte:     1,
	DataTypeUndefined:      1,
	DataTypeSignedLong:     4,
	DataTypeSignedRational: 8,
}

// DataTypeFromTag returns the data type identified by a wire type tag.
func DataTypeFromTag(tag uint16) (DataType, bool) {
	if int(tag) >= len(widths) || widths[tag] == 0 {
		return 0, false
	}
	return DataType(tag), true
}

// Width returns the size in bytes of a single element of dt, or 0 if dt is not supported.
func (dt DataType) Width() uint32 {
	if int(dt) >= len(widths) {
		return 0
	}
	return widths[dt]
}

// IsText reports whether values of dt are held as a string rather than a sequence of scalars.
func (dt DataType) IsText() bool {
	return dt == DataTypeAscii || dt == DataTypeUndefined
}

func (dt DataType) IsRational() bool {
	return dt == DataTypeRational || dt == DataTypeSignedRational
}

func (dt DataType) IsInteger() bool {
	switch dt {
	case DataTypeByte, DataTypeSignedByte, DataTypeShort, DataTypeLong, DataTypeSignedLong:
		return true
	}
	return false
}

func (dt DataType) String() string {
	switch dt {
	case DataTypeByte:
		return "unsigned byte"
	case DataTypeAscii:
		return "ascii"
	case DataTypeShort:
		return "unsigned short 16bits"
	case DataTypeLong:
		return "unsigned long 32bits"
	case DataTypeRational:
		return "unsigned rational"
	case DataTypeSignedByte:
		return "signed byte"
	case DataTypeUndefined:
		return "undefined"
	case DataTypeSignedLong:
		return "signed long 32bits"
	case DataTypeSignedRational:
		return "signed rational"
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(dt))
}
