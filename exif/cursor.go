package exif

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Cursor reads integers and strings at offsets relative to the start of the
// TIFF header, honoring the byte order declared by that header.
type Cursor struct {
	src   source
	base  int64
	order binary.ByteOrder
}

// NewCursor returns a cursor over an in-memory blob, which may start either
// with the TIFF header or with the "Exif\0\0" prefix.
func NewCursor(data []byte) (*Cursor, error) {
	return newCursor(&memorySource{data: data})
}

// NewStreamCursor is like NewCursor, but reads the blob from r on demand.
func NewStreamCursor(r io.Reader) (*Cursor, error) {
	return newCursor(newStreamSource(r))
}

// NewStreamCursorAt returns a cursor over r whose TIFF header is known to
// start at base, e.g. 0 when a caller already stripped the "Exif\0\0" prefix.
func NewStreamCursorAt(r io.Reader, base int64) (*Cursor, error) {
	if base < 0 {
		return nil, invalidHeader("negative base offset %d", base)
	}
	c := &Cursor{src: newStreamSource(r), base: base}
	if err := c.detectByteOrder(); err != nil {
		return nil, err
	}
	return c, nil
}

func newCursor(src source) (*Cursor, error) {
	c := &Cursor{src: src}
	if err := c.detectBase(); err != nil {
		return nil, err
	}
	if err := c.detectByteOrder(); err != nil {
		return nil, err
	}
	return c, nil
}

// detectBase finds where the TIFF header starts: right away, or after the Exif prefix.
func (c *Cursor) detectBase() error {
	marker, err := c.src.slice(0, 2)
	if err != nil {
		return headerOrErr(err, "no valid header")
	}
	if m := string(marker); m == IntelByteOrder || m == MotorolaByteOrder {
		c.base = 0
		return nil
	}
	prefix, err := c.src.slice(0, uint64(len(Header)))
	if err != nil {
		return headerOrErr(err, "no valid header")
	}
	if !bytes.Equal(prefix, []byte(Header)) {
		return invalidHeader("no valid header")
	}
	c.base = int64(len(Header))
	return nil
}

func (c *Cursor) detectByteOrder() error {
	marker, err := c.src.slice(c.base, 2)
	if err != nil {
		return headerOrErr(err, "missing byte order marker")
	}
	order, err := readEndianness(marker)
	if err != nil {
		return err
	}
	c.order = order

	magic, err := c.src.slice(c.base+2, 2)
	if err != nil {
		return headerOrErr(err, "missing magic number")
	}
	return validateMagicNumber(order, magic)
}

// readEndianness reads and returns the endianness of the metadata.
func readEndianness(buffer []byte) (binary.ByteOrder, error) {
	switch string(buffer) {
	case IntelByteOrder:
		return binary.LittleEndian, nil
	case MotorolaByteOrder:
		return binary.BigEndian, nil
	default:
		return nil, invalidHeader("unknown endianness: 0x%X", buffer)
	}
}

// validateMagicNumber checks that the 2 bytes following the byte order marker hold the TIFF magic number
func validateMagicNumber(byteOrder binary.ByteOrder, buffer []byte) error {
	if magic := byteOrder.Uint16(buffer); magic != MagicNumber {
		return invalidHeader("unknown magic number: 0x%X", magic)
	}
	return nil
}

func headerOrErr(err error, message string) error {
	var te TruncationError
	if errors.As(err, &te) {
		return invalidHeader(message)
	}
	return err
}

// ByteOrder returns the byte order declared by the header.
func (c *Cursor) ByteOrder() binary.ByteOrder {
	return c.order
}

// Base returns the absolute position of the TIFF header in the underlying data.
func (c *Cursor) Base() int64 {
	return c.base
}

// Uint reads an unsigned integer of 1 to 8 bytes at offset.
func (c *Cursor) Uint(offset int64, size int) (uint64, error) {
	if size < 1 || size > 8 {
		panic(fmt.Sprintf("exif: cannot read a %d-byte integer", size))
	}
	buf, err := c.src.slice(c.base+offset, uint64(size))
	if err != nil {
		return 0, err
	}
	var v uint64
	if c.order == binary.BigEndian {
		for _, b := range buf {
			v = v<<8 | uint64(b)
		}
	} else {
		for i := len(buf) - 1; i >= 0; i-- {
			v = v<<8 | uint64(buf[i])
		}
	}
	return v, nil
}

func (c *Cursor) Uint16(offset int64) (uint16, error) {
	v, err := c.Uint(offset, 2)
	return uint16(v), err
}

func (c *Cursor) Uint32(offset int64) (uint32, error) {
	v, err := c.Uint(offset, 4)
	return uint32(v), err
}

// Text reads n bytes at offset. If terminated is set, the last byte must be
// a null terminator, which is stripped. A zero length always yields "".
func (c *Cursor) Text(offset int64, n uint32, terminated bool) (string, error) {
	if n == 0 {
		return "", nil
	}
	buf, err := c.src.slice(c.base+offset, uint64(n))
	if err != nil {
		return "", err
	}
	if terminated {
		if buf[len(buf)-1] != 0 {
			return "", EncodingError{Offset: offset}
		}
		buf = buf[:len(buf)-1]
	}
	return string(buf), nil
}

// Require checks that n bytes are available at offset.
func (c *Cursor) Require(offset int64, n uint64) error {
	if n == 0 {
		return nil
	}
	_, err := c.src.slice(c.base+offset, n)
	return err
}
