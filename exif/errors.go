package exif

import "fmt"

// HeaderError reports a missing or malformed Exif/TIFF header.
type HeaderError struct {
	message string
}

func (e HeaderError) Error() string {
	return "exif: invalid header: " + e.message
}

func invalidHeader(format string, args ...any) HeaderError {
	return HeaderError{message: fmt.Sprintf(format, args...)}
}

// TruncationError reports a read past the end of the available data.
type TruncationError struct {
	Offset int64
	Length uint64
}

func (e TruncationError) Error() string {
	return fmt.Sprintf("exif: premature end of data reading %d bytes at offset %d", e.Length, e.Offset)
}

// EncodingError reports a string that should have been null-terminated but was not.
type EncodingError struct {
	Offset int64
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("exif: missing null terminator in string at offset %d", e.Offset)
}

// UnknownTypeError reports a field whose type tag is not supported. The
// decoder drops such fields and keeps going.
type UnknownTypeError struct {
	Tag    uint16
	Type   uint16
	Offset int64
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("exif: skipping field 0x%04X at offset %d: unknown data type %d", e.Tag, e.Offset, e.Type)
}

// StructureError reports directories that cannot be walked, such as a loop in the IFD chain.
type StructureError struct {
	message string
}

func (e StructureError) Error() string {
	return "exif: " + e.message
}

func invalidStructure(format string, args ...any) StructureError {
	return StructureError{message: fmt.Sprintf(format, args...)}
}

// EncodeError reports a table that cannot be represented in the output format.
type EncodeError struct {
	message string
}

func (e EncodeError) Error() string {
	return "exif: cannot encode: " + e.message
}

func cannotEncode(format string, args ...any) EncodeError {
	return EncodeError{message: fmt.Sprintf(format, args...)}
}
