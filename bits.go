package bitfield

// bitbuf abstracts reading and writing bit spans in a byte array
// where the spans may start at any bit offset and have any width
// up to 64 bits. byte 0 holds the lowest order bits, so the buffer
// as a whole is the little endian form of the packed value.
type bitbuf struct {
	buf []byte
}

func newBitbuf(bits uint) bitbuf {
	return bitbuf{buf: make([]byte, (bits+7)/8)}
}

// Get returns the width bits starting at bit offset off.
func (b bitbuf) Get(off, width uint) uint64 {
	var val uint64
	for shift := uint(0); width > 0; {
		n, o := off/8, off%8
		take := 8 - o
		if take > width {
			take = width
		}
		val |= uint64(b.buf[n]>>o) & (1<<take - 1) << shift
		shift += take
		off += take
		width -= take
	}
	return val
}

// Put writes the low width bits of val starting at bit offset off.
func (b bitbuf) Put(off, width uint, val uint64) {
	for width > 0 {
		n, o := off/8, off%8
		take := 8 - o
		if take > width {
			take = width
		}
		mask := byte(1<<take-1) << o
		b.buf[n] = b.buf[n]&^mask | byte(val)<<o&mask
		val >>= take
		off += take
		width -= take
	}
}
