package bitfield

// byte order for the physical serialization of a packed layout.
// the zero value is invalid on purpose: callers always say which
// order they mean.

type Order int

const (
	Little Order = iota + 1
	Big
)

func (o Order) valid() bool { return o == Little || o == Big }

func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "invalid"
	}
}

// reversed returns a copy of buf with the byte order flipped.
func reversed(buf []byte) []byte {
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[len(buf)-1-i] = b
	}
	return out
}
