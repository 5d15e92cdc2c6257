package test

import (
	"encoding/binary"
	"errors"
	"io"
)

type endianness interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Blob builds TIFF metadata by hand, in either byte order.
type Blob struct {
	byteOrder endianness
	buffer    []byte
}

func NewBlob() *Blob {
	return &Blob{
		byteOrder: binary.LittleEndian,
		buffer:    make([]byte, 0),
	}
}

// BigEndian switches the integers appended from now on to big-endian.
func (b *Blob) BigEndian() *Blob {
	b.byteOrder = binary.BigEndian

	return b
}

// WithHeader appends the byte order marker matching the blob's byte order,
// the magic number and the offset of the first IFD.
func (b *Blob) WithHeader(firstIFD uint32) *Blob {
	if b.byteOrder == binary.BigEndian {
		b.WithString("MM")
	} else {
		b.WithString("II")
	}

	return b.WithUints16(42).WithUints32(firstIFD)
}

func (b *Blob) WithString(value string) *Blob {
	b.buffer = append(b.buffer, []byte(value)...)

	return b
}

func (b *Blob) WithBytes(values ...byte) *Blob {
	b.buffer = append(b.buffer, values...)

	return b
}

func (b *Blob) WithUints16(values ...uint16) *Blob {
	for _, value := range values {
		b.buffer = b.byteOrder.AppendUint16(b.buffer, value)
	}

	return b
}

func (b *Blob) WithUints32(values ...uint32) *Blob {
	for _, value := range values {
		b.buffer = b.byteOrder.AppendUint32(b.buffer, value)
	}

	return b
}

// WithEntry appends the first 8 bytes of an IFD entry; the caller appends the 4-byte value slot.
func (b *Blob) WithEntry(tag, dataType uint16, count uint32) *Blob {
	return b.WithUints16(tag, dataType).WithUints32(count)
}

// Len returns the number of bytes appended so far, i.e. the offset of the next one.
func (b *Blob) Len() uint32 {
	return uint32(len(b.buffer))
}

func (b *Blob) Bytes() []byte {
	return b.buffer
}

// Reader returns a reader over the blob that yields at most chunk bytes per call.
func (b *Blob) Reader(chunk int) io.Reader {
	return &ShortReader{data: b.buffer, chunk: chunk}
}

// ShortReader is an io.Reader returning fewer bytes than asked for.
type ShortReader struct {
	data   []byte
	offset int
	chunk  int
}

func NewShortReader(data []byte, chunk int) *ShortReader {
	return &ShortReader{data: data, chunk: chunk}
}

func (sr *ShortReader) Read(p []byte) (int, error) {
	if p == nil {
		return 0, errors.New("destination cannot be nil")
	}

	if sr.offset >= len(sr.data) {
		return 0, io.EOF
	}

	end := sr.offset + sr.chunk
	if end > len(sr.data) {
		end = len(sr.data)
	}
	if end-sr.offset > len(p) {
		end = sr.offset + len(p)
	}

	n := copy(p, sr.data[sr.offset:end])
	sr.offset += n

	return n, nil
}
