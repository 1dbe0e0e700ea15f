package bitfield

import (
	"math/big"

	"github.com/zeebo/mon"
)

// pack writes every assigned field into a little endian bit buffer
// at its cumulative offset. Unassigned fields pack as zero.
func (l *Layout) pack() bitbuf {
	bb := newBitbuf(l.Bits())
	off := uint(0)
	for _, f := range l.fields {
		if f.set {
			bb.Put(off, f.width, f.value)
		}
		off += f.width
	}
	return bb
}

// Export packs the layout into a single integer with field 0 in the
// lowest order bits and each later field immediately above the widths
// before it. Exporting a partially filled layout is fine, the empty
// slots read as zero. The integer is only recoverable by a holder of
// the same ordered width list.
func (l *Layout) Export() *big.Int {
	return new(big.Int).SetBytes(reversed(l.pack().buf))
}

// ExportBytes packs the layout and serializes it with the requested
// byte order into ceil(Bits()/8) bytes.
func (l *Layout) ExportBytes(order Order) (_ []byte, err error) {
	defer mon.Start().Stop(&err)

	switch order {
	case Little:
		return l.pack().buf, nil
	case Big:
		return reversed(l.pack().buf), nil
	default:
		return nil, InvalidByteOrder.New("order %d", int(order))
	}
}

// unpack refills every field from a little endian buffer and marks
// the layout fully assigned. Bits above the layout's total width are
// discarded and bits past the end of the buffer read as zero. The
// widths stay as constructed.
func (l *Layout) unpack(little []byte) {
	if need := int((l.Bits() + 7) / 8); len(little) < need {
		padded := make([]byte, need)
		copy(padded, little)
		little = padded
	}
	bb := bitbuf{buf: little}

	off := uint(0)
	for i := range l.fields {
		f := &l.fields[i]
		f.assign(bb.Get(off, f.width))
		off += f.width
	}
	l.cursor = len(l.fields)
}

// FromInt reinitializes every field from the packed integer, field 0
// taken from the lowest order bits. Negative input fails, but excess
// high bits do not: decode is lenient where Assign is strict.
func (l *Layout) FromInt(v *big.Int) (err error) {
	defer mon.Start().Stop(&err)

	if v.Sign() < 0 {
		return NegativeValue.New("%s", v)
	}
	l.unpack(reversed(v.Bytes()))
	return nil
}

// FromBytes reinitializes every field from bytes in the given order.
// Same leniency as FromInt: short input reads as zero, extra input
// beyond the layout's bits is discarded.
func (l *Layout) FromBytes(b []byte, order Order) (err error) {
	defer mon.Start().Stop(&err)

	switch order {
	case Little:
		l.unpack(b)
	case Big:
		l.unpack(reversed(b))
	default:
		return InvalidByteOrder.New("order %d", int(order))
	}
	return nil
}
