package bitfield

import (
	"fmt"
	"strings"
)

// field is one slot in a layout: a fixed width and a value that may
// not have been assigned yet.
type field struct {
	width uint
	value uint64
	set   bool
}

func newField(width uint) field { return field{width: width} }

func (f field) Width() uint   { return f.width }
func (f field) Empty() bool   { return !f.set }
func (f field) Value() uint64 { return f.value }

func (f *field) assign(v uint64) { f.value, f.set = v, true }

// fits reports whether v can be stored without losing bits.
func (f field) fits(v uint64) bool { return f.width >= 64 || v>>f.width == 0 }

func (f field) String() string {
	if !f.set {
		return fmt.Sprintf("%s:%d", strings.Repeat("-", int(f.width)), f.width)
	}
	return fmt.Sprintf("%0*b:%d", int(f.width), f.value, f.width)
}

// A Value is the contents of one slot as seen by Values: the stored
// integer and whether the slot has been assigned at all.
type Value struct {
	Uint64 uint64
	Set    bool
}
