package exif

const (
	// Header is the fixed prefix of an Exif APP1 payload, before the TIFF header.
	Header = "Exif\x00\x00"

	// IntelByteOrder is the TIFF standard marker for Intel byte ordering (aka little-endian)
	IntelByteOrder = "II"
	// MotorolaByteOrder is the TIFF standard marker for Motorola byte ordering (aka big-endian)
	MotorolaByteOrder = "MM"

	// MagicNumber follows the byte order marker in every TIFF header
	MagicNumber = 42

	// inlineSize is the size of the value slot of a directory record: values
	// up to this size are stored in the record, larger ones behind an offset
	inlineSize = 4
	// recordSize is the size of a directory record, in bytes
	recordSize = 12
	// firstIFDOffset is the position of the pointer to the primary IFD in the TIFF header
	firstIFDOffset = 4
	// ifdTypeTag is the TIFF type of sub-IFD offsets; some writers use it for the Exif pointer
	ifdTypeTag = 13
)
