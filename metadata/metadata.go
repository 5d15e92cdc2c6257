// Package metadata decides which metadata travels from a source image to an
// exported one. It only goes through the public Table API.
package metadata

import (
	"io"
	"log/slog"

	"github.com/fedragon/exif-codec/exif"
	"github.com/fedragon/exif-codec/exif/entry"
)

// Exported lists the tags copied from a source image into an export.
var Exported = []entry.ID{
	entry.XResolution,
	entry.YResolution,
	entry.ResolutionUnit,
	entry.Make,
	entry.Model,
	entry.LensMake,
	entry.LensModel,
	entry.Flash,
	entry.ExposureTime,
	entry.ExposureProgram,
	entry.ExposureBiasValue,
	entry.ExposureMode,
	entry.FNumber,
	entry.ApertureValue,
	entry.ShutterSpeedValue,
	entry.ISOSpeedRatings,
	entry.MeteringMode,
	entry.FocalLength,
	entry.DateTime,
	entry.DateTimeOriginal,
	entry.DateTimeDigitized,
	entry.ImageDescription,
	entry.Artist,
	entry.Copyright,
	entry.UserComment,
	entry.ImageUniqueID,
}

// CopyForExport returns a new table holding the Exported tags found in src,
// plus a Software tag naming the exporting application. src may be nil. The
// copied fields are independent of the ones in src.
func CopyForExport(src *exif.Table, software string) *exif.Table {
	dst := exif.NewTable()
	if src != nil {
		for _, id := range Exported {
			if f, ok := src.Get(id); ok {
				dst.Put(f.Clone())
			}
		}
	}
	dst.Put(exif.NewTextField(entry.Software, exif.DataTypeAscii, software))
	return dst
}

// Load decodes data, returning nil and logging a warning if it cannot be
// decoded: unreadable metadata never fails the image operation. A nil logger
// means slog.Default().
func Load(data []byte, logger *slog.Logger) *exif.Table {
	logger = orDefault(logger)
	c, err := exif.NewCursor(data)
	if err != nil {
		logger.Warn("ignoring unreadable metadata", "error", err)
		return nil
	}
	return load(c, logger)
}

// LoadReader is like Load, but reads the metadata from r.
func LoadReader(r io.Reader, logger *slog.Logger) *exif.Table {
	logger = orDefault(logger)
	c, err := exif.NewStreamCursor(r)
	if err != nil {
		logger.Warn("ignoring unreadable metadata", "error", err)
		return nil
	}
	return load(c, logger)
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func load(c *exif.Cursor, logger *slog.Logger) *exif.Table {
	d := exif.NewDecoder(c, exif.WithLogger(logger))
	t, err := d.Decode()
	if err != nil {
		logger.Warn("ignoring unreadable metadata", "error", err)
		return nil
	}
	if w := d.Warnings(); w != nil {
		logger.Debug("metadata decoded with warnings", "warnings", w)
	}
	return t
}

// Export builds the metadata of an exported image from the metadata of its
// source, which may be empty or unreadable. It returns nil, after logging a
// warning, if the result cannot be encoded.
func Export(source []byte, software string, logger *slog.Logger) []byte {
	logger = orDefault(logger)
	var src *exif.Table
	if len(source) > 0 {
		src = Load(source, logger)
	}
	out, err := exif.Encode(CopyForExport(src, software))
	if err != nil {
		logger.Warn("dropping metadata of exported image", "error", err)
		return nil
	}
	return out
}
