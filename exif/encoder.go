package exif

import (
	"encoding/binary"
	"math"

	"github.com/fedragon/exif-codec/exif/entry"
)

// the encoder only produces little-endian output
var littleEndian = binary.LittleEndian

// delayedWrite is a value too large to fit in its directory record. It is
// appended after the directory and its offset patched into the record.
type delayedWrite struct {
	offset int
	field  *Field
}

// Encoder serializes a Table as an Exif APP1 payload. An Encoder can be
// reused, but not concurrently.
type Encoder struct {
	buf         []byte
	delayed     []delayedWrite
	exifPointer int
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode serializes t with a fresh Encoder.
func Encode(t *Table) ([]byte, error) {
	return NewEncoder().Encode(t)
}

// Encode writes the primary IFD of t followed by its Exif IFD, and returns
// the result prefixed by "Exif\0\0". Any other main IFD is not written.
func (e *Encoder) Encode(t *Table) ([]byte, error) {
	e.buf = e.buf[:0]
	e.delayed = e.delayed[:0]
	e.exifPointer = -1

	e.writeHeader()
	if err := e.writeIFD(t.PrimaryIFD(), true); err != nil {
		return nil, err
	}
	if err := e.writeIFD(t.ExifIFD(), false); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(Header)+len(e.buf))
	out = append(out, Header...)
	return append(out, e.buf...), nil
}

// writeHeader writes the TIFF header; the primary IFD follows immediately.
func (e *Encoder) writeHeader() {
	if len(e.buf) > 0 {
		return
	}
	e.buf = append(e.buf, IntelByteOrder...)
	e.buf = littleEndian.AppendUint16(e.buf, MagicNumber)
	pos := len(e.buf)
	e.buf = littleEndian.AppendUint32(e.buf, 0)
	littleEndian.PutUint32(e.buf[pos:], uint32(pos+4))
}

func (e *Encoder) writeIFD(d *IFD, primary bool) error {
	if !primary && e.exifPointer >= 0 {
		pos, err := e.position()
		if err != nil {
			return err
		}
		littleEndian.PutUint32(e.buf[e.exifPointer:], pos)
	}

	fields := d.Fields()
	if len(fields) > math.MaxUint16 {
		return cannotEncode("directory holds %d fields, at most %d allowed", len(fields), math.MaxUint16)
	}
	e.buf = littleEndian.AppendUint16(e.buf, uint16(len(fields)))

	for _, f := range fields {
		start := len(e.buf)
		e.buf = littleEndian.AppendUint16(e.buf, uint16(f.tag))
		e.buf = littleEndian.AppendUint16(e.buf, uint16(f.dataType))
		e.buf = littleEndian.AppendUint32(e.buf, f.Count())

		if f.ByteLength() <= inlineSize {
			e.appendValue(f)
			// the value slot is always 4 bytes wide
			for len(e.buf) < start+recordSize {
				e.buf = append(e.buf, 0)
			}
		} else {
			e.delayed = append(e.delayed, delayedWrite{offset: len(e.buf), field: f})
			e.buf = littleEndian.AppendUint32(e.buf, 0)
		}

		if primary && f.tag == entry.ExifIFDPointer {
			e.exifPointer = start + 8
		}
	}

	// no chained directory
	e.buf = littleEndian.AppendUint32(e.buf, 0)

	for _, w := range e.delayed {
		pos, err := e.position()
		if err != nil {
			return err
		}
		littleEndian.PutUint32(e.buf[w.offset:], pos)
		e.appendValue(w.field)
		if len(e.buf)%2 == 1 {
			e.buf = append(e.buf, 0)
		}
	}
	e.delayed = e.delayed[:0]
	return nil
}

// position returns the current end of the buffer as a TIFF offset.
func (e *Encoder) position() (uint32, error) {
	if uint64(len(e.buf)) > math.MaxUint32 {
		return 0, cannotEncode("output exceeds %d bytes", uint64(math.MaxUint32))
	}
	return uint32(len(e.buf)), nil
}

func (e *Encoder) appendValue(f *Field) {
	switch {
	case f.dataType.IsText():
		e.buf = append(e.buf, f.text...)
		if f.dataType == DataTypeAscii {
			e.buf = append(e.buf, 0)
		}
	case f.dataType.IsRational():
		for _, r := range f.rationals {
			e.buf = littleEndian.AppendUint32(e.buf, uint32(r.Numerator))
			e.buf = littleEndian.AppendUint32(e.buf, uint32(r.Denominator))
		}
	default:
		for _, v := range f.ints {
			switch f.dataType.Width() {
			case 1:
				e.buf = append(e.buf, byte(v))
			case 2:
				e.buf = littleEndian.AppendUint16(e.buf, uint16(v))
			default:
				e.buf = littleEndian.AppendUint32(e.buf, uint32(v))
			}
		}
	}
}
