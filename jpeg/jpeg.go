// Package jpeg finds and replaces the Exif APP1 segment of a JPEG stream.
// Everything else, entropy-coded data included, is copied through untouched.
package jpeg

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fedragon/exif-codec/exif"
)

const (
	markerPrefix = 0xFF
	markerTEM    = 0x01
	markerRST0   = 0xD0
	markerSOI    = 0xD8
	markerEOI    = 0xD9
	markerSOS    = 0xDA
	markerAPP0   = 0xE0
	markerAPP1   = 0xE1

	// MaxPayload is the largest payload a segment can hold: its length field
	// is 16 bits wide and counts itself.
	MaxPayload = 0xFFFF - 2
)

var (
	ErrNotJPEG = errors.New("jpeg: missing SOI marker")
	ErrNoExif  = errors.New("jpeg: no Exif segment")
)

type segment struct {
	marker byte
	data   []byte
}

func (s segment) isExif() bool {
	return s.marker == markerAPP1 && bytes.HasPrefix(s.data, []byte(exif.Header))
}

// standalone markers carry no length nor payload.
func standalone(marker byte) bool {
	return marker == markerTEM || (marker >= markerRST0 && marker <= markerEOI)
}

func readSOI(r *bufio.Reader) error {
	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return ErrNotJPEG
	}
	if soi[0] != markerPrefix || soi[1] != markerSOI {
		return ErrNotJPEG
	}
	return nil
}

func readSegment(r *bufio.Reader) (segment, error) {
	b, err := r.ReadByte()
	if err != nil {
		return segment{}, err
	}
	if b != markerPrefix {
		return segment{}, fmt.Errorf("jpeg: invalid marker prefix 0x%02X", b)
	}
	// any number of fill bytes may precede a marker
	marker := byte(markerPrefix)
	for marker == markerPrefix {
		if marker, err = r.ReadByte(); err != nil {
			return segment{}, err
		}
	}
	if standalone(marker) {
		return segment{marker: marker}, nil
	}

	var lengthRaw [2]byte
	if _, err := io.ReadFull(r, lengthRaw[:]); err != nil {
		return segment{}, err
	}
	length := binary.BigEndian.Uint16(lengthRaw[:])
	if length < 2 {
		return segment{}, fmt.Errorf("jpeg: invalid length %d for segment 0x%02X", length, marker)
	}
	data := make([]byte, length-2)
	if _, err := io.ReadFull(r, data); err != nil {
		return segment{}, err
	}
	return segment{marker: marker, data: data}, nil
}

func writeSegment(w io.Writer, s segment) error {
	if standalone(s.marker) {
		_, err := w.Write([]byte{markerPrefix, s.marker})
		return err
	}
	header := []byte{markerPrefix, s.marker, 0, 0}
	binary.BigEndian.PutUint16(header[2:], uint16(len(s.data)+2))
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(s.data)
	return err
}

// ReadExif returns the payload of the first Exif APP1 segment of r, starting
// with the "Exif\0\0" prefix, or ErrNoExif.
func ReadExif(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	if err := readSOI(br); err != nil {
		return nil, err
	}
	for {
		s, err := readSegment(br)
		if errors.Is(err, io.EOF) {
			return nil, ErrNoExif
		}
		if err != nil {
			return nil, err
		}
		if s.isExif() {
			return s.data, nil
		}
		if s.marker == markerSOS || s.marker == markerEOI {
			return nil, ErrNoExif
		}
	}
}

// WriteExif copies the JPEG stream src to dst with payload as its Exif APP1
// segment. An existing Exif segment is replaced; otherwise the new one is
// placed after the APP0 segments. A nil payload removes the Exif segment.
func WriteExif(dst io.Writer, src io.Reader, payload []byte) error {
	if len(payload) > MaxPayload {
		return fmt.Errorf("jpeg: Exif payload of %d bytes exceeds %d", len(payload), MaxPayload)
	}
	br := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)
	if err := readSOI(br); err != nil {
		return err
	}
	if _, err := bw.Write([]byte{markerPrefix, markerSOI}); err != nil {
		return err
	}

	written := payload == nil
	writeExif := func() error {
		if written {
			return nil
		}
		written = true
		return writeSegment(bw, segment{marker: markerAPP1, data: payload})
	}

	for {
		s, err := readSegment(br)
		if err != nil {
			return err
		}
		switch {
		case s.isExif():
			if err := writeExif(); err != nil {
				return err
			}
			continue
		case s.marker != markerAPP0:
			if err := writeExif(); err != nil {
				return err
			}
		}
		if err := writeSegment(bw, s); err != nil {
			return err
		}
		if s.marker == markerSOS {
			if _, err := io.Copy(bw, br); err != nil {
				return err
			}
			break
		}
		if s.marker == markerEOI {
			break
		}
	}
	return bw.Flush()
}
