package buf

import "math"

// AddressSpace is the number of addressable bytes with a 32-bit offset.
const AddressSpace = uint64(math.MaxUint32) + 1

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// SpanEnd returns the exclusive end of the span [start, start+n) widened to
// 64 bits so it cannot wrap around at 2^32.
func SpanEnd(start uint32, n int) uint64 {
	if n < 0 {
		n = 0
	}
	return uint64(start) + uint64(n)
}

// InSpan reports whether p lies in [start, start+n). An empty span contains nothing.
func InSpan(p uint64, start uint32, n uint32) bool {
	if n == 0 {
		return false
	}
	return p >= uint64(start) && p < uint64(start)+uint64(n)
}

// Fits32 reports whether [start, start+n) stays inside the 32-bit address space.
func Fits32(start uint32, n int) bool {
	return n >= 0 && SpanEnd(start, n) <= AddressSpace
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
