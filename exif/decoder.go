package exif

import (
	"errors"
	"io"
	"log/slog"

	"github.com/fedragon/exif-codec/exif/entry"
	"github.com/hashicorp/go-multierror"
)

// Decoder rebuilds a Table from the directories reachable from a TIFF header.
type Decoder struct {
	cursor   *Cursor
	logger   *slog.Logger
	warnings *multierror.Error
}

type Option func(d *Decoder)

// WithLogger sets the logger used to report fields skipped while decoding.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

func NewDecoder(c *Cursor, opts ...Option) *Decoder {
	d := &Decoder{
		cursor: c,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes an in-memory blob, with or without the "Exif\0\0" prefix.
func Decode(data []byte, opts ...Option) (*Table, error) {
	c, err := NewCursor(data)
	if err != nil {
		return nil, err
	}
	return NewDecoder(c, opts...).Decode()
}

// DecodeReader decodes a blob read from r, with or without the "Exif\0\0" prefix.
func DecodeReader(r io.Reader, opts ...Option) (*Table, error) {
	c, err := NewStreamCursor(r)
	if err != nil {
		return nil, err
	}
	return NewDecoder(c, opts...).Decode()
}

// Warnings returns the recoverable problems met by the last call to Decode,
// or nil. The returned error is a *multierror.Error.
func (d *Decoder) Warnings() error {
	return d.warnings.ErrorOrNil()
}

// Decode walks the chain of main IFDs starting at the offset stored in the
// TIFF header. Once the chain ends, the Exif IFD pointed to by the last
// ExifIFDPointer field seen is visited as a terminal directory.
func (d *Decoder) Decode() (*Table, error) {
	d.warnings = nil

	offset, err := d.cursor.Uint32(firstIFDOffset)
	if err != nil {
		return nil, err
	}

	var (
		main       []*IFD
		exif       *IFD
		pending    uint32
		hasPending bool
		redirected bool
		visited    = make(map[uint32]bool)
	)
	for offset != 0 {
		if visited[offset] {
			return nil, invalidStructure("IFD cycle detected at offset %d", offset)
		}
		visited[offset] = true

		ifd, next, pointer, err := d.readIFD(offset)
		if err != nil {
			return nil, err
		}
		if redirected {
			exif = ifd
			break
		}
		main = append(main, ifd)
		if pointer != nil {
			pending, hasPending = *pointer, true
		}

		switch {
		case next != 0:
			offset = next
		case hasPending:
			offset = pending
			hasPending = false
			redirected = true
		default:
			offset = 0
		}
	}

	t := NewTable()
	if err := t.SetDirectories(main, exif); err != nil {
		return nil, invalidStructure("no primary IFD")
	}
	return t, nil
}

// readIFD reads the directory at offset. It returns the offset of the next
// directory in the chain and, if the directory holds one, the Exif IFD pointer.
func (d *Decoder) readIFD(offset uint32) (*IFD, uint32, *uint32, error) {
	count, err := d.cursor.Uint16(int64(offset))
	if err != nil {
		return nil, 0, nil, err
	}

	ifd := NewIFD()
	var pointer *uint32
	pos := int64(offset) + 2
	for i := 0; i < int(count); i++ {
		f, err := d.readField(pos)
		if err != nil {
			var unknown UnknownTypeError
			if !errors.As(err, &unknown) {
				return nil, 0, nil, err
			}
			d.logger.Debug("skipping field", "tag", entry.ID(unknown.Tag), "type", unknown.Type, "offset", unknown.Offset)
			d.warnings = multierror.Append(d.warnings, unknown)
		} else {
			ifd.Append(f)
			if f.tag == entry.ExifIFDPointer && f.dataType.IsInteger() && f.Len() > 0 {
				p := uint32(f.Int(0))
				pointer = &p
			}
		}
		// records are fixed size, whatever was consumed by the value
		pos += recordSize
	}

	next, err := d.cursor.Uint32(pos)
	if err != nil {
		return nil, 0, nil, err
	}
	return ifd, next, pointer, nil
}

// readField reads the directory record at pos.
func (d *Decoder) readField(pos int64) (*Field, error) {
	tag, err := d.cursor.Uint16(pos)
	if err != nil {
		return nil, err
	}
	typeTag, err := d.cursor.Uint16(pos + 2)
	if err != nil {
		return nil, err
	}
	count, err := d.cursor.Uint32(pos + 4)
	if err != nil {
		return nil, err
	}

	dataType, ok := DataTypeFromTag(typeTag)
	if !ok && typeTag == ifdTypeTag && entry.ID(tag) == entry.ExifIFDPointer {
		dataType, ok = DataTypeLong, true
	}
	if !ok {
		return nil, UnknownTypeError{Tag: tag, Type: typeTag, Offset: pos}
	}

	width := dataType.Width()
	byteLength := uint64(count) * uint64(width)
	valuePos := pos + 8
	if byteLength > inlineSize {
		p, err := d.cursor.Uint32(valuePos)
		if err != nil {
			return nil, err
		}
		valuePos = int64(p)
	}
	if err := d.cursor.Require(valuePos, byteLength); err != nil {
		return nil, err
	}

	f := NewField(entry.ID(tag), dataType)
	switch {
	case dataType.IsText():
		s, err := d.cursor.Text(valuePos, count, dataType == DataTypeAscii)
		if err != nil {
			return nil, err
		}
		f.SetText(s)
	case dataType.IsRational():
		for i := int64(0); i < int64(count); i++ {
			at := valuePos + i*int64(width)
			num, err := d.cursor.Uint32(at)
			if err != nil {
				return nil, err
			}
			den, err := d.cursor.Uint32(at + 4)
			if err != nil {
				return nil, err
			}
			f.AppendRational(Rational{Numerator: int32(num), Denominator: int32(den)})
		}
	default:
		for i := int64(0); i < int64(count); i++ {
			v, err := d.cursor.Uint(valuePos+i*int64(width), int(width))
			if err != nil {
				return nil, err
			}
			f.AppendInt(signed(dataType, v))
		}
	}
	return f, nil
}

// signed sign-extends v according to dataType.
func signed(dataType DataType, v uint64) int64 {
	switch dataType {
	case DataTypeSignedByte:
		return int64(int8(v))
	case DataTypeSignedLong:
		return int64(int32(v))
	}
	return int64(v)
}
