package exif

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// source gives random access to the bytes of a metadata blob.
type source interface {
	// slice returns the n bytes starting at the absolute offset, or a TruncationError.
	slice(offset int64, n uint64) ([]byte, error)
}

type memorySource struct {
	data []byte
}

func (s *memorySource) slice(offset int64, n uint64) ([]byte, error) {
	end, ok := spanEnd(offset, n)
	if !ok || end > uint64(len(s.data)) {
		return nil, TruncationError{Offset: offset, Length: n}
	}
	return s.data[offset:end], nil
}

const (
	initialStreamBuffer = 512
	maxEmptyReads       = 100
)

// streamSource buffers an io.Reader, pulling more bytes the first time an
// offset past the buffered data is requested. The buffer doubles when full.
type streamSource struct {
	r   io.Reader
	buf []byte
	eof bool
}

func newStreamSource(r io.Reader) *streamSource {
	return &streamSource{r: r, buf: make([]byte, 0, initialStreamBuffer)}
}

func (s *streamSource) slice(offset int64, n uint64) ([]byte, error) {
	end, ok := spanEnd(offset, n)
	if !ok {
		return nil, TruncationError{Offset: offset, Length: n}
	}
	if end > uint64(len(s.buf)) {
		if err := s.fill(end); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, TruncationError{Offset: offset, Length: n}
			}
			return nil, err
		}
	}
	return s.buf[offset:end], nil
}

// fill reads from the underlying reader until at least end bytes are buffered.
func (s *streamSource) fill(end uint64) error {
	empty := 0
	for uint64(len(s.buf)) < end {
		if s.eof {
			return io.EOF
		}
		if len(s.buf) == cap(s.buf) {
			grown := make([]byte, len(s.buf), 2*cap(s.buf))
			copy(grown, s.buf)
			s.buf = grown
		}
		n, err := s.r.Read(s.buf[len(s.buf):cap(s.buf)])
		s.buf = s.buf[:len(s.buf)+n]
		switch {
		case errors.Is(err, io.EOF):
			s.eof = true
		case err != nil:
			return fmt.Errorf("exif: reading metadata: %w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return fmt.Errorf("exif: reading metadata: %w", io.ErrNoProgress)
			}
		}
	}
	return nil
}

func spanEnd(offset int64, n uint64) (uint64, bool) {
	if offset < 0 || n > math.MaxInt64-uint64(offset) {
		return 0, false
	}
	return uint64(offset) + n, true
}
