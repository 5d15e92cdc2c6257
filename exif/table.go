package exif

import (
	"errors"

	"github.com/fedragon/exif-codec/exif/entry"
)

// DefaultExifVersion is the ExifVersion value seeded into every new table.
const DefaultExifVersion = "0220"

var ErrNoDirectories = errors.New("exif: a table needs at least one main directory")

// Table is a decoded (or to-be-encoded) set of metadata directories: the main
// IFD chain, whose first element is the primary IFD, and the Exif sub-IFD.
type Table struct {
	main []*IFD
	exif *IFD
}

// NewTable returns a table with an empty primary IFD and an Exif IFD holding
// only ExifVersion.
func NewTable() *Table {
	return &Table{
		main: []*IFD{NewIFD()},
		exif: NewIFD(NewTextField(entry.ExifVersion, DataTypeUndefined, DefaultExifVersion)),
	}
}

// Put stores f in the Exif IFD if its tag belongs to the Exif group, in the
// primary IFD otherwise. An existing field with the same tag is replaced in place.
func (t *Table) Put(f *Field) {
	if f.tag.Group() == entry.GroupExif {
		t.exif.Put(f)
		return
	}
	t.main[0].Put(f)
}

// Get looks tag up in the main IFDs, in chain order, then in the Exif IFD.
func (t *Table) Get(tag entry.ID) (*Field, bool) {
	for _, d := range t.main {
		if f, ok := d.Get(tag); ok {
			return f, true
		}
	}
	return t.exif.Get(tag)
}

// PrimaryIFD returns the first main IFD, making sure it holds a pointer to
// the Exif IFD. The pointer value is only meaningful once encoded.
func (t *Table) PrimaryIFD() *IFD {
	primary := t.main[0]
	if f, ok := primary.Get(entry.ExifIFDPointer); !ok || !isExifPointer(f) {
		primary.Put(NewIntField(entry.ExifIFDPointer, DataTypeLong, 0))
	}
	return primary
}

func (t *Table) ExifIFD() *IFD {
	return t.exif
}

// Directories returns the main IFDs in chain order.
func (t *Table) Directories() []*IFD {
	out := make([]*IFD, len(t.main))
	copy(out, t.main)
	return out
}

// SetDirectories replaces every directory of the table.
func (t *Table) SetDirectories(main []*IFD, exif *IFD) error {
	if len(main) == 0 {
		return ErrNoDirectories
	}
	if exif == nil {
		exif = NewIFD()
	}
	t.main = append([]*IFD(nil), main...)
	t.exif = exif
	return nil
}

func isExifPointer(f *Field) bool {
	return f.dataType == DataTypeLong && len(f.ints) == 1
}
