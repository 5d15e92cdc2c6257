package entry

import (
	"fmt"
)

type ID uint16

// Group tells which directory of a metadata table a tag belongs to.
type Group uint8

const (
	GroupTiff Group = iota
	GroupExif
)

func (g Group) String() string {
	switch g {
	case GroupTiff:
		return "Tiff"
	case GroupExif:
		return "Exif"
	}
	return fmt.Sprintf("Group(%d)", uint8(g))
}

const (
	// Size of an IFD entry, in bytes
	Size = 12

	// IFD #0

	ImageWidth                ID = 0x100
	ImageLength               ID = 0x101
	BitsPerSample             ID = 0x102
	Compression               ID = 0x103
	PhotometricInterpretation ID = 0x106
	ImageDescription          ID = 0x10e
	Make                      ID = 0x10f
	Model                     ID = 0x110
	Orientation               ID = 0x112
	SamplesPerPixel           ID = 0x115
	XResolution               ID = 0x11a
	YResolution               ID = 0x11b
	PlanarConfiguration       ID = 0x11c
	ResolutionUnit            ID = 0x128
	Software                  ID = 0x131
	DateTime                  ID = 0x132
	Artist                    ID = 0x13b
	WhitePoint                ID = 0x13e
	PrimaryChromaticities     ID = 0x13f
	YCbCrCoefficients         ID = 0x211
	YCbCrPositioning          ID = 0x213
	ReferenceBlackWhite       ID = 0x214
	Copyright                 ID = 0x8298
	ExifIFDPointer            ID = 0x8769
	GPSInfo                   ID = 0x8825

	// Exif sub-IFD

	ExposureTime             ID = 0x829a
	FNumber                  ID = 0x829d
	ExposureProgram          ID = 0x8822
	SpectralSensitivity      ID = 0x8824
	ISOSpeedRatings          ID = 0x8827
	ExifVersion              ID = 0x9000
	DateTimeOriginal         ID = 0x9003
	DateTimeDigitized        ID = 0x9004
	OffsetTime               ID = 0x9010
	OffsetTimeOriginal       ID = 0x9011
	ComponentsConfiguration  ID = 0x9101
	CompressedBitsPerPixel   ID = 0x9102
	ShutterSpeedValue        ID = 0x9201
	ApertureValue            ID = 0x9202
	BrightnessValue          ID = 0x9203
	ExposureBiasValue        ID = 0x9204
	MaxApertureValue         ID = 0x9205
	SubjectDistance          ID = 0x9206
	MeteringMode             ID = 0x9207
	LightSource              ID = 0x9208
	Flash                    ID = 0x9209
	FocalLength              ID = 0x920a
	MakerNote                ID = 0x927c
	UserComment              ID = 0x9286
	SubsecTime               ID = 0x9290
	SubsecTimeOriginal       ID = 0x9291
	SubsecTimeDigitized      ID = 0x9292
	FlashpixVersion          ID = 0xa000
	ColorSpace               ID = 0xa001
	PixelXDimension          ID = 0xa002
	PixelYDimension          ID = 0xa003
	FocalPlaneXResolution    ID = 0xa20e
	FocalPlaneYResolution    ID = 0xa20f
	FocalPlaneResolutionUnit ID = 0xa210
	SensingMethod            ID = 0xa217
	FileSource               ID = 0xa300
	SceneType                ID = 0xa301
	CustomRendered           ID = 0xa401
	ExposureMode             ID = 0xa402
	WhiteBalance             ID = 0xa403
	DigitalZoomRatio         ID = 0xa404
	FocalLengthIn35mmFilm    ID = 0xa405
	SceneCaptureType         ID = 0xa406
	GainControl              ID = 0xa407
	Contrast                 ID = 0xa408
	Saturation               ID = 0xa409
	Sharpness                ID = 0xa40a
	SubjectDistanceRange     ID = 0xa40c
	ImageUniqueID            ID = 0xa420
	CameraOwnerName          ID = 0xa430
	BodySerialNumber         ID = 0xa431
	LensSpecification        ID = 0xa432
	LensMake                 ID = 0xa433
	LensModel                ID = 0xa434
	LensSerialNumber         ID = 0xa435
)

// Tag is the symbolic identity of a known tag.
type Tag struct {
	Name  string
	Group Group
}

var registry = map[ID]Tag{
	ImageWidth:                {"ImageWidth", GroupTiff},
	ImageLength:               {"ImageLength", GroupTiff},
	BitsPerSample:             {"BitsPerSample", GroupTiff},
	Compression:               {"Compression", GroupTiff},
	PhotometricInterpretation: {"PhotometricInterpretation", GroupTiff},
	ImageDescription:          {"ImageDescription", GroupTiff},
	Make:                      {"Make", GroupTiff},
	Model:                     {"Model", GroupTiff},
	Orientation:               {"Orientation", GroupTiff},
	SamplesPerPixel:           {"SamplesPerPixel", GroupTiff},
	XResolution:               {"XResolution", GroupTiff},
	YResolution:               {"YResolution", GroupTiff},
	PlanarConfiguration:       {"PlanarConfiguration", GroupTiff},
	ResolutionUnit:            {"ResolutionUnit", GroupTiff},
	Software:                  {"Software", GroupTiff},
	DateTime:                  {"DateTime", GroupTiff},
	Artist:                    {"Artist", GroupTiff},
	WhitePoint:                {"WhitePoint", GroupTiff},
	PrimaryChromaticities:     {"PrimaryChromaticities", GroupTiff},
	YCbCrCoefficients:         {"YCbCrCoefficients", GroupTiff},
	YCbCrPositioning:          {"YCbCrPositioning", GroupTiff},
	ReferenceBlackWhite:       {"ReferenceBlackWhite", GroupTiff},
	Copyright:                 {"Copyright", GroupTiff},
	ExifIFDPointer:            {"ExifIFDPointer", GroupTiff},
	GPSInfo:                   {"GPSInfo", GroupTiff},

	ExposureTime:             {"ExposureTime", GroupExif},
	FNumber:                  {"FNumber", GroupExif},
	ExposureProgram:          {"ExposureProgram", GroupExif},
	SpectralSensitivity:      {"SpectralSensitivity", GroupExif},
	ISOSpeedRatings:          {"ISOSpeedRatings", GroupExif},
	ExifVersion:              {"ExifVersion", GroupExif},
	DateTimeOriginal:         {"DateTimeOriginal", GroupExif},
	DateTimeDigitized:        {"DateTimeDigitized", GroupExif},
	OffsetTime:               {"OffsetTime", GroupExif},
	OffsetTimeOriginal:       {"OffsetTimeOriginal", GroupExif},
	ComponentsConfiguration:  {"ComponentsConfiguration", GroupExif},
	CompressedBitsPerPixel:   {"CompressedBitsPerPixel", GroupExif},
	ShutterSpeedValue:        {"ShutterSpeedValue", GroupExif},
	ApertureValue:            {"ApertureValue", GroupExif},
	BrightnessValue:          {"BrightnessValue", GroupExif},
	ExposureBiasValue:        {"ExposureBiasValue", GroupExif},
	MaxApertureValue:         {"MaxApertureValue", GroupExif},
	SubjectDistance:          {"SubjectDistance", GroupExif},
	MeteringMode:             {"MeteringMode", GroupExif},
	LightSource:              {"LightSource", GroupExif},
	Flash:                    {"Flash", GroupExif},
	FocalLength:              {"FocalLength", GroupExif},
	MakerNote:                {"MakerNote", GroupExif},
	UserComment:              {"UserComment", GroupExif},
	SubsecTime:               {"SubsecTime", GroupExif},
	SubsecTimeOriginal:       {"SubsecTimeOriginal", GroupExif},
	SubsecTimeDigitized:      {"SubsecTimeDigitized", GroupExif},
	FlashpixVersion:          {"FlashpixVersion", GroupExif},
	ColorSpace:               {"ColorSpace", GroupExif},
	PixelXDimension:          {"PixelXDimension", GroupExif},
	PixelYDimension:          {"PixelYDimension", GroupExif},
	FocalPlaneXResolution:    {"FocalPlaneXResolution", GroupExif},
	FocalPlaneYResolution:    {"FocalPlaneYResolution", GroupExif},
	FocalPlaneResolutionUnit: {"FocalPlaneResolutionUnit", GroupExif},
	SensingMethod:            {"SensingMethod", GroupExif},
	FileSource:               {"FileSource", GroupExif},
	SceneType:                {"SceneType", GroupExif},
	CustomRendered:           {"CustomRendered", GroupExif},
	ExposureMode:             {"ExposureMode", GroupExif},
	WhiteBalance:             {"WhiteBalance", GroupExif},
	DigitalZoomRatio:         {"DigitalZoomRatio", GroupExif},
	FocalLengthIn35mmFilm:    {"FocalLengthIn35mmFilm", GroupExif},
	SceneCaptureType:         {"SceneCaptureType", GroupExif},
	GainControl:              {"GainControl", GroupExif},
	Contrast:                 {"Contrast", GroupExif},
	Saturation:               {"Saturation", GroupExif},
	Sharpness:                {"Sharpness", GroupExif},
	SubjectDistanceRange:     {"SubjectDistanceRange", GroupExif},
	ImageUniqueID:            {"ImageUniqueID", GroupExif},
	CameraOwnerName:          {"CameraOwnerName", GroupExif},
	BodySerialNumber:         {"BodySerialNumber", GroupExif},
	LensSpecification:        {"LensSpecification", GroupExif},
	LensMake:                 {"LensMake", GroupExif},
	LensModel:                {"LensModel", GroupExif},
	LensSerialNumber:         {"LensSerialNumber", GroupExif},
}

// Lookup returns the registered identity of id, if any.
func Lookup(id ID) (Tag, bool) {
	t, ok := registry[id]
	return t, ok
}

// Group returns the group id belongs to. Unknown tags belong to GroupTiff.
func (id ID) Group() Group {
	if t, ok := registry[id]; ok {
		return t.Group
	}
	return GroupTiff
}

func (id ID) String() string {
	if t, ok := registry[id]; ok {
		return t.Name
	}
	return fmt.Sprintf("0x%04X", uint16(id))
}
