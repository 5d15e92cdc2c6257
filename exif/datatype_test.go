package exif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeFromTag(t *testing.T) {
	testCases := []struct {
		tag   uint16
		width uint32
		ok    bool
	}{
		{tag: 0, ok: false},
		{tag: 1, width: 1, ok: true},
		{tag: 2, width: 1, ok: true},
		{tag: 3, width: 2, ok: true},
		{tag: 4, width: 4, ok: true},
		{tag: 5, width: 8, ok: true},
		{tag: 6, width: 1, ok: true},
		{tag: 7, width: 1, ok: true},
		{tag: 8, ok: false},
		{tag: 9, width: 4, ok: true},
		{tag: 10, width: 8, ok: true},
		{tag: 11, ok: false},
		{tag: 12, ok: false},
		{tag: 0xFFFF, ok: false},
	}

	for _, tc := range testCases {
		dt, ok := DataTypeFromTag(tc.tag)
		assert.Equal(t, tc.ok, ok, "tag %d", tc.tag)
		if ok {
			assert.EqualValues(t, tc.tag, dt)
			assert.Equal(t, tc.width, dt.Width(), "tag %d", tc.tag)
		}
	}
}

func TestDataType_Kinds(t *testing.T) {
	assert.True(t, DataTypeAscii.IsText())
	assert.True(t, DataTypeUndefined.IsText())
	assert.False(t, DataTypeByte.IsText())

	assert.True(t, DataTypeRational.IsRational())
	assert.True(t, DataTypeSignedRational.IsRational())
	assert.False(t, DataTypeLong.IsRational())

	for _, dt := range []DataType{DataTypeByte, DataTypeSignedByte, DataTypeShort, DataTypeLong, DataTypeSignedLong} {
		assert.True(t, dt.IsInteger(), dt.String())
	}
	assert.False(t, DataTypeUndefined.IsInteger())

	assert.Equal(t, "UNKNOWN(8)", DataType(8).String())
	assert.Zero(t, DataType(200).Width())
}
