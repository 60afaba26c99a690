package qsim

import (
	"math/big"
	"math/bits"
	"slices"
)

/*
Index labels one computational basis state of the register. Bit i holds the
value of the qubit currently occupying internal location i, so the width grows
with the number of allocated qubits and is never capped by a machine word.

The bits are packed little-endian into a string with trailing zero bytes
trimmed. That canonical form makes Index comparable with ==, which is what
lets it key the sparse state map directly. Every method returns a new value
and leaves the receiver untouched.
*/
type Index struct {
	b string
}

// NewIndex returns the index whose low 64 bits are v.
func NewIndex(v uint64) Index {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	return Index{b: canonical(buf)}
}

// IndexFromBig converts the magnitude of v into an Index.
func IndexFromBig(v *big.Int) Index {
	buf := new(big.Int).Abs(v).Bytes()
	slices.Reverse(buf)
	return Index{b: canonical(buf)}
}

func canonical(buf []byte) string {
	n := len(buf)
	for n > 0 && buf[n-1] == 0 {
		n--
	}
	return string(buf[:n])
}

// Bit reports whether bit i is set.
func (x Index) Bit(i uint) bool {
	k := int(i >> 3)
	if k >= len(x.b) {
		return false
	}
	return x.b[k]&(1<<(i&7)) != 0
}

// SetBit returns x with bit i forced to v.
func (x Index) SetBit(i uint, v bool) Index {
	if x.Bit(i) == v {
		return x
	}
	return x.Flip(i)
}

// Flip returns x with bit i toggled.
func (x Index) Flip(i uint) Index {
	k := int(i >> 3)
	buf := make([]byte, max(len(x.b), k+1))
	copy(buf, x.b)
	buf[k] ^= 1 << (i & 7)
	return Index{b: canonical(buf)}
}

// Xor returns the bitwise exclusive or of x and y.
func (x Index) Xor(y Index) Index {
	long, short := x.b, y.b
	if len(short) > len(long) {
		long, short = short, long
	}
	buf := []byte(long)
	for i := 0; i < len(short); i++ {
		buf[i] ^= short[i]
	}
	return Index{b: canonical(buf)}
}

// And returns the bitwise and of x and y.
func (x Index) And(y Index) Index {
	buf := make([]byte, min(len(x.b), len(y.b)))
	for i := range buf {
		buf[i] = x.b[i] & y.b[i]
	}
	return Index{b: canonical(buf)}
}

// Or returns the bitwise or of x and y.
func (x Index) Or(y Index) Index {
	long, short := x.b, y.b
	if len(short) > len(long) {
		long, short = short, long
	}
	buf := []byte(long)
	for i := 0; i < len(short); i++ {
		buf[i] |= short[i]
	}
	return Index{b: canonical(buf)}
}

// OnesCount returns the number of set bits.
func (x Index) OnesCount() int {
	n := 0
	for i := 0; i < len(x.b); i++ {
		n += bits.OnesCount8(x.b[i])
	}
	return n
}

/*
Parity reports whether x and mask share an odd number of set bits. It is the
allocation-free equivalent of x.And(mask).OnesCount()&1 == 1 and sits on the
measurement hot path.
*/
func (x Index) Parity(mask Index) bool {
	n := min(len(x.b), len(mask.b))
	acc := byte(0)
	for i := 0; i < n; i++ {
		acc ^= x.b[i] & mask.b[i]
	}
	return bits.OnesCount8(acc)&1 == 1
}

// HasAll reports whether every bit at the given positions is set.
func (x Index) HasAll(positions []uint) bool {
	for _, p := range positions {
		if !x.Bit(p) {
			return false
		}
	}
	return true
}

// BitLen returns the position of the highest set bit plus one, 0 for the zero index.
func (x Index) BitLen() int {
	if len(x.b) == 0 {
		return 0
	}
	return (len(x.b)-1)*8 + bits.Len8(x.b[len(x.b)-1])
}

// IsZero reports whether no bit is set.
func (x Index) IsZero() bool {
	return len(x.b) == 0
}

// Cmp returns -1, 0 or +1 as x is numerically less than, equal to or greater than y.
func (x Index) Cmp(y Index) int {
	if len(x.b) != len(y.b) {
		if len(x.b) < len(y.b) {
			return -1
		}
		return 1
	}
	for i := len(x.b) - 1; i >= 0; i-- {
		switch {
		case x.b[i] < y.b[i]:
			return -1
		case x.b[i] > y.b[i]:
			return 1
		}
	}
	return 0
}

// Big returns x as a non-negative big.Int.
func (x Index) Big() *big.Int {
	buf := []byte(x.b)
	slices.Reverse(buf)
	return new(big.Int).SetBytes(buf)
}

// String renders x in decimal.
func (x Index) String() string {
	return x.Big().String()
}

// maskOf builds the index with exactly the given positions set.
func maskOf(positions []uint) Index {
	var width uint
	for _, p := range positions {
		width = max(width, p+1)
	}
	buf := make([]byte, (width+7)/8)
	for _, p := range positions {
		buf[p>>3] |= 1 << (p & 7)
	}
	return Index{b: canonical(buf)}
}
