// Package bitfield packs ordered fixed-width unsigned fields into a
// single integer or byte sequence and unpacks them back out.
package bitfield

import (
	"strings"

	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
)

// error classes for every way a layout operation can fail.
var (
	InvalidLayout    = errs.Class("invalid layout")
	LayoutFull       = errs.Class("layout full")
	ValueOutOfRange  = errs.Class("value out of range")
	IndexOutOfRange  = errs.Class("index out of range")
	InvalidByteOrder = errs.Class("invalid byte order")
	NegativeValue    = errs.Class("negative value")
)

// Layout is an ordered sequence of bit fields that packs into a single
// integer, field 0 in the lowest order bits. The widths are fixed at
// construction; only the values and the fill cursor ever change. Both
// ends of a wire exchange must construct the same widths out of band,
// nothing about the layout is self describing.
//
// A Layout is not safe for concurrent use.
type Layout struct {
	fields []field
	cursor int
}

// New constructs a layout from the given field widths. Every width
// must be in [1, 64]; values are uint64 so wider fields have nowhere
// to live, though the total across fields is unbounded.
func New(widths ...uint) (*Layout, error) {
	if len(widths) == 0 {
		return nil, InvalidLayout.New("no fields")
	}

	fields := make([]field, 0, len(widths))
	for i, w := range widths {
		if w == 0 || w > 64 {
			return nil, InvalidLayout.New("field %d: width %d", i, w)
		}
		fields = append(fields, newField(w))
	}

	return &Layout{fields: fields}, nil
}

// Len returns the number of fields.
func (l *Layout) Len() int { return len(l.fields) }

// Bits returns the total packed width in bits.
func (l *Layout) Bits() uint {
	total := uint(0)
	for _, f := range l.fields {
		total += f.width
	}
	return total
}

// Widths returns a copy of the field widths in order.
func (l *Layout) Widths() []uint {
	out := make([]uint, len(l.fields))
	for i, f := range l.fields {
		out[i] = f.width
	}
	return out
}

// At returns the value stored in field i and whether it has been
// assigned. It reports false for out of bounds indexes.
func (l *Layout) At(i int) (uint64, bool) {
	if i < 0 || i >= len(l.fields) {
		return 0, false
	}
	f := l.fields[i]
	return f.value, f.set
}

// Values returns every slot in field order without consuming anything.
func (l *Layout) Values() []Value {
	out := make([]Value, len(l.fields))
	for i, f := range l.fields {
		out[i] = Value{Uint64: f.value, Set: f.set}
	}
	return out
}

var assignThunk mon.Thunk

// Assign stores v into the first unassigned field and advances the
// fill cursor. It fails with LayoutFull when every field is assigned
// and with ValueOutOfRange when v needs more bits than the field has.
func (l *Layout) Assign(v uint64) (err error) {
	timer := assignThunk.Start()
	defer timer.Stop(&err)

	if l.cursor >= len(l.fields) {
		return LayoutFull.New("%d fields", len(l.fields))
	}

	f := &l.fields[l.cursor]
	if !f.fits(v) {
		return ValueOutOfRange.New("%d does not fit in %d bits", v, f.width)
	}

	f.assign(v)
	l.cursor++
	return nil
}

var assignAllThunk mon.Thunk

// AssignAll stores each value into successive unassigned fields. The
// whole batch is checked up front: on error nothing is written and
// the fill cursor does not move.
func (l *Layout) AssignAll(vs []uint64) (err error) {
	timer := assignAllThunk.Start()
	defer timer.Stop(&err)

	if l.cursor+len(vs) > len(l.fields) {
		return LayoutFull.New("%d values into %d free fields",
			len(vs), len(l.fields)-l.cursor)
	}
	for i, v := range vs {
		if f := l.fields[l.cursor+i]; !f.fits(v) {
			return ValueOutOfRange.New("%d does not fit in %d bits", v, f.width)
		}
	}

	for i, v := range vs {
		l.fields[l.cursor+i].assign(v)
	}
	l.cursor += len(vs)
	return nil
}

// Delete removes field i, width and value both, shifting later fields
// down one position. Assigned and unassigned fields delete the same
// way. The fill cursor moves back to the first unassigned field.
func (l *Layout) Delete(i int) error {
	if i < 0 || i >= len(l.fields) {
		return IndexOutOfRange.New("index %d of %d fields", i, len(l.fields))
	}

	l.fields = append(l.fields[:i], l.fields[i+1:]...)
	l.rewind()
	return nil
}

// rewind points the cursor at the first unassigned field.
func (l *Layout) rewind() {
	l.cursor = len(l.fields)
	for i, f := range l.fields {
		if f.Empty() {
			l.cursor = i
			break
		}
	}
}

// String renders each field's binary contents and declared width.
// Debugging aid only, not a wire format.
func (l *Layout) String() string {
	parts := make([]string, len(l.fields))
	for i, f := range l.fields {
		parts[i] = f.String()
	}
	return "<Layout " + strings.Join(parts, " ") + ">"
}
