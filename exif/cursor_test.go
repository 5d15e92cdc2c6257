package exif

import (
	"encoding/binary"
	"testing"

	"github.com/fedragon/exif-codec/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEndianness(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		order binary.ByteOrder
		err   bool
	}{
		{
			name:  "IntelByteOrder",
			input: []byte{0x49, 0x49},
			order: binary.LittleEndian,
			err:   false,
		},
		{
			name:  "MotorolaByteOrder",
			input: []byte{0x4D, 0x4D},
			order: binary.BigEndian,
			err:   false,
		},
		{
			name:  "UnknownByteOrder",
			input: []byte{0x34, 0x4D},
			order: nil,
			err:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := readEndianness(tc.input)
			if tc.err && err == nil {
				t.Error("expected error, but got none")
			}
			if !tc.err && err != nil {
				t.Error(err)
			}
			if order != tc.order {
				t.Errorf("expected order %v, but got %v", tc.order, order)
			}
		})
	}
}

func Test_ValidateMagicNumber(t *testing.T) {
	testCases := []struct {
		name      string
		byteOrder binary.ByteOrder
		input     []byte
		err       bool
	}{
		{
			name:      "MagicNumberBigEndian",
			byteOrder: binary.BigEndian,
			input:     []byte{0x00, 0x2A},
			err:       false,
		},
		{
			name:      "MagicNumberLittleEndian",
			byteOrder: binary.LittleEndian,
			input:     []byte{0x2A, 0x00},
			err:       false,
		},
		{
			name:      "SwappedMagicNumber",
			byteOrder: binary.BigEndian,
			input:     []byte{0x2A, 0x00},
			err:       true,
		},
		{
			name:      "OrfMagicNumber",
			byteOrder: binary.LittleEndian,
			input:     []byte{0x52, 0x4F},
			err:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateMagicNumber(tc.byteOrder, tc.input)
			if tc.err && err == nil {
				t.Error("expected error, but got none")
			} else if !tc.err && err != nil {
				t.Error(err)
			}
		})
	}
}

func TestNewCursor_Header(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		base  int64
		order binary.ByteOrder
		err   bool
	}{
		{
			name:  "LittleEndianTiff",
			input: test.NewBlob().WithHeader(8).Bytes(),
			base:  0,
			order: binary.LittleEndian,
		},
		{
			name:  "BigEndianTiff",
			input: test.NewBlob().BigEndian().WithHeader(8).Bytes(),
			base:  0,
			order: binary.BigEndian,
		},
		{
			name:  "ExifPrefix",
			input: test.NewBlob().WithString(Header).WithHeader(8).Bytes(),
			base:  6,
			order: binary.LittleEndian,
		},
		{
			name:  "UnknownPrefix",
			input: []byte("JFIF\x00\x00II*\x00"),
			err:   true,
		},
		{
			name:  "ExifPrefixWithoutByteOrder",
			input: []byte("Exif\x00\x00XX*\x00"),
			err:   true,
		},
		{
			name:  "WrongMagicNumber",
			input: test.NewBlob().WithString("II").WithUints16(43).Bytes(),
			err:   true,
		},
		{
			name:  "TooShort",
			input: []byte("I"),
			err:   true,
		},
		{
			name:  "PrefixOnly",
			input: []byte("Exif\x00\x00"),
			err:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCursor(tc.input)
			if tc.err {
				var he HeaderError
				assert.ErrorAs(t, err, &he)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.base, c.Base())
			assert.Equal(t, tc.order, c.ByteOrder())
		})
	}
}

func TestCursor_Uint(t *testing.T) {
	le, err := NewCursor(test.NewBlob().WithHeader(0x01020304).Bytes())
	require.NoError(t, err)
	be, err := NewCursor(test.NewBlob().BigEndian().WithHeader(0x01020304).Bytes())
	require.NoError(t, err)

	for _, c := range []*Cursor{le, be} {
		v, err := c.Uint32(4)
		require.NoError(t, err)
		assert.EqualValues(t, 0x01020304, v)

		magic, err := c.Uint16(2)
		require.NoError(t, err)
		assert.EqualValues(t, 42, magic)
	}

	v, err := le.Uint(4, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 0x020304, v)

	v, err = be.Uint(4, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 0x010203, v)

	v, err = le.Uint(0, 8)
	require.NoError(t, err)
	assert.EqualValues(t, uint64(0x01020304002A4949), v)

	_, err = le.Uint(6, 4)
	var te TruncationError
	assert.ErrorAs(t, err, &te)

	assert.Panics(t, func() { _, _ = le.Uint(0, 9) })
}

func TestCursor_Text(t *testing.T) {
	blob := test.NewBlob().WithString(Header).WithHeader(8).WithString("abc\x00xyz").Bytes()
	c, err := NewCursor(blob)
	require.NoError(t, err)

	s, err := c.Text(8, 4, true)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	s, err = c.Text(8, 4, false)
	require.NoError(t, err)
	assert.Equal(t, "abc\x00", s)

	_, err = c.Text(12, 3, true)
	var ee EncodingError
	assert.ErrorAs(t, err, &ee)

	s, err = c.Text(12, 3, false)
	require.NoError(t, err)
	assert.Equal(t, "xyz", s)

	s, err = c.Text(1000, 0, true)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	_, err = c.Text(12, 4, false)
	var te TruncationError
	assert.ErrorAs(t, err, &te)
}

func TestStreamCursor(t *testing.T) {
	payload := make([]byte, 3000)
	for i := range payload {
		payload[i] = byte(i)
	}
	blob := test.NewBlob().WithString(Header).BigEndian().WithHeader(8).WithBytes(payload...)

	c, err := NewStreamCursor(blob.Reader(7))
	require.NoError(t, err)
	assert.EqualValues(t, 6, c.Base())
	assert.Equal(t, binary.BigEndian, c.ByteOrder())

	// far past the initial buffer: forces several doublings
	v, err := c.Uint(8+2999, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2999%256, v)

	// already buffered
	v, err = c.Uint(8, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0x0001, v)

	require.NoError(t, c.Require(8, 3000))

	err = c.Require(8, 3001)
	var te TruncationError
	assert.ErrorAs(t, err, &te)
}

func TestStreamCursorAt(t *testing.T) {
	blob := test.NewBlob().WithHeader(8).WithUints16(0xBEEF)

	c, err := NewStreamCursorAt(blob.Reader(1), 0)
	require.NoError(t, err)
	v, err := c.Uint16(8)
	require.NoError(t, err)
	assert.EqualValues(t, 0xBEEF, v)

	_, err = NewStreamCursorAt(test.NewBlob().WithString(Header).WithHeader(8).Reader(64), 0)
	var he HeaderError
	assert.ErrorAs(t, err, &he)
}
