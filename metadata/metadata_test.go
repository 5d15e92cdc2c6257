package metadata

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/fedragon/exif-codec/exif"
	"github.com/fedragon/exif-codec/exif/entry"
	"github.com/fedragon/exif-codec/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(out *strings.Builder) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func source() *exif.Table {
	src := exif.NewTable()
	src.Put(exif.NewTextField(entry.Make, exif.DataTypeAscii, "Canon"))
	src.Put(exif.NewTextField(entry.Model, exif.DataTypeAscii, "EOS 40D"))
	src.Put(exif.NewTextField(entry.Software, exif.DataTypeAscii, "Firmware 1.0.3"))
	src.Put(exif.NewIntField(entry.Orientation, exif.DataTypeShort, 6))
	src.Put(exif.NewIntField(entry.ISOSpeedRatings, exif.DataTypeShort, 400))
	src.Put(exif.NewRationalField(entry.ExposureTime, exif.DataTypeRational, exif.NewRational(1, 160)))
	src.Put(exif.NewTextField(entry.MakerNote, exif.DataTypeUndefined, "private"))
	src.Put(exif.NewTextField(entry.ImageUniqueID, exif.DataTypeAscii, "0123456789abcdef"))
	return src
}

func TestCopyForExport(t *testing.T) {
	dst := CopyForExport(source(), "exifcodec 1.0")

	for _, id := range []entry.ID{entry.Make, entry.Model, entry.ISOSpeedRatings, entry.ExposureTime, entry.ImageUniqueID} {
		_, ok := dst.Get(id)
		assert.True(t, ok, "%v should be copied", id)
	}
	for _, id := range []entry.ID{entry.Orientation, entry.MakerNote} {
		_, ok := dst.Get(id)
		assert.False(t, ok, "%v should not be copied", id)
	}

	software, ok := dst.Get(entry.Software)
	require.True(t, ok)
	assert.Equal(t, "exifcodec 1.0", software.Text())

	_, ok = dst.ExifIFD().Get(entry.ISOSpeedRatings)
	assert.True(t, ok, "Exif tags stay in the Exif IFD")
}

func TestCopyForExport_IndependentFields(t *testing.T) {
	src := source()
	dst := CopyForExport(src, "exifcodec")

	iso, ok := src.Get(entry.ISOSpeedRatings)
	require.True(t, ok)
	iso.AppendInt(800)

	copied, ok := dst.Get(entry.ISOSpeedRatings)
	require.True(t, ok)
	assert.Equal(t, 1, copied.Len())
	assert.NotSame(t, iso, copied)
}

func TestCopyForExport_NilSource(t *testing.T) {
	dst := CopyForExport(nil, "exifcodec")

	assert.Equal(t, 1, dst.Directories()[0].Len())
	_, ok := dst.Get(entry.ExifVersion)
	assert.True(t, ok)
}

func TestLoad(t *testing.T) {
	var out strings.Builder
	blob, err := exif.Encode(source())
	require.NoError(t, err)

	tbl := Load(blob, newLogger(&out))
	require.NotNil(t, tbl)
	model, ok := tbl.Get(entry.Model)
	require.True(t, ok)
	assert.Equal(t, "EOS 40D", model.Text())
	assert.Empty(t, out.String())

	tbl = LoadReader(test.NewShortReader(blob, 16), newLogger(&out))
	require.NotNil(t, tbl)
}

func TestLoad_DegradesToNoMetadata(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
	}{
		{name: "Garbage", input: []byte("not metadata at all")},
		{name: "Truncated", input: test.NewBlob().WithHeader(8).WithUints16(3).Bytes()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			assert.Nil(t, Load(tc.input, newLogger(&out)))
			assert.Contains(t, out.String(), "ignoring unreadable metadata")

			out.Reset()
			assert.Nil(t, LoadReader(test.NewShortReader(tc.input, 4), newLogger(&out)))
			assert.Contains(t, out.String(), "level=WARN")
		})
	}
}

func TestLoad_LogsWarnings(t *testing.T) {
	var out strings.Builder
	blob := test.NewBlob().WithHeader(8).
		WithUints16(1).
		WithEntry(0x0001, 11, 1).WithUints32(0).
		WithUints32(0).
		Bytes()

	tbl := Load(blob, newLogger(&out))
	require.NotNil(t, tbl)
	assert.Contains(t, out.String(), "metadata decoded with warnings")
}

func TestExport(t *testing.T) {
	var out strings.Builder
	blob, err := exif.Encode(source())
	require.NoError(t, err)

	exported := Export(blob, "exifcodec", newLogger(&out))
	require.NotNil(t, exported)

	tbl, err := exif.Decode(exported)
	require.NoError(t, err)
	software, ok := tbl.Get(entry.Software)
	require.True(t, ok)
	assert.Equal(t, "exifcodec", software.Text())
	_, ok = tbl.Get(entry.MakerNote)
	assert.False(t, ok)

	exported = Export([]byte("garbage"), "exifcodec", newLogger(&out))
	require.NotNil(t, exported, "unreadable source metadata still yields an export")
	tbl, err = exif.Decode(exported)
	require.NoError(t, err)
	_, ok = tbl.Get(entry.Make)
	assert.False(t, ok)
}

func TestNilLogger(t *testing.T) {
	blob, err := exif.Encode(source())
	require.NoError(t, err)

	assert.NotNil(t, Load(blob, nil))
	assert.NotNil(t, LoadReader(test.NewShortReader(blob, 16), nil))
	assert.NotPanics(t, func() {
		assert.Nil(t, Load([]byte("garbage"), nil))
		assert.Nil(t, LoadReader(test.NewShortReader([]byte("garbage"), 4), nil))
		assert.NotNil(t, Export([]byte("garbage"), "exifcodec", nil))
	})
}
