package exif

import "github.com/fedragon/exif-codec/exif/entry"

// IFD is an ordered list of fields.
type IFD struct {
	fields []*Field
}

func NewIFD(fields ...*Field) *IFD {
	d := &IFD{}
	for _, f := range fields {
		d.Append(f)
	}
	return d
}

// Append adds f at the end of the directory, even if its tag is already present.
func (d *IFD) Append(f *Field) {
	d.fields = append(d.fields, f)
}

// Put replaces the first field with the same tag as f, keeping its position,
// or appends f if there is none.
func (d *IFD) Put(f *Field) {
	for i, existing := range d.fields {
		if existing.tag == f.tag {
			d.fields[i] = f
			return
		}
	}
	d.fields = append(d.fields, f)
}

// Get returns the first field with the given tag.
func (d *IFD) Get(tag entry.ID) (*Field, bool) {
	for _, f := range d.fields {
		if f.tag == tag {
			return f, true
		}
	}
	return nil, false
}

// Fields returns the fields in insertion order.
func (d *IFD) Fields() []*Field {
	out := make([]*Field, len(d.fields))
	copy(out, d.fields)
	return out
}

func (d *IFD) Len() int {
	return len(d.fields)
}
