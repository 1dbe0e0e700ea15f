package bitfield

// Iter returns an iterator over the fields in order. Unlike decoding
// a packed integer by repeated shifting, iterating does not consume
// or change anything.
func (l *Layout) Iter() Iterator {
	return Iterator{l: l, idx: -1}
}

// Iterator walks a layout's fields front to back.
type Iterator struct {
	l   *Layout
	idx int
}

// Next advances to the next field and reports whether one exists.
func (it *Iterator) Next() bool {
	it.idx++
	return it.idx < len(it.l.fields)
}

// Width returns the current field's declared width.
func (it *Iterator) Width() uint { return it.l.fields[it.idx].Width() }

// Value returns the current field's value and whether it is assigned.
func (it *Iterator) Value() (uint64, bool) {
	f := it.l.fields[it.idx]
	return f.Value(), !f.Empty()
}
