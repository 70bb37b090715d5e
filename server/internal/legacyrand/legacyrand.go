// Package legacyrand implements the linear congruential generator used by
// the legacy protocol-14 world generator and entity AI. It is bit-compatible
// with the reference implementation: same multiplier, increment, modulus and
// bit-extraction scheme, so that chunk generation and loot rolls reproduce
// exactly given the same seed.
package legacyrand

const (
	multiplier = 0x5DEECE66D
	increment  = 0xB
	mask       = (1 << 48) - 1
)

// Rand is a legacy linear congruential generator. The zero value is not
// usable; construct one with New.
type Rand struct {
	seed uint64
}

// New returns a Rand seeded with seed.
func New(seed int64) *Rand {
	r := &Rand{}
	r.SetSeed(seed)
	return r
}

// SetSeed reseeds r.
func (r *Rand) SetSeed(seed int64) {
	r.seed = (uint64(seed) ^ multiplier) & mask
}

// next advances the generator and returns the top bits most-significant bits
// of the new state.
func (r *Rand) next(bits uint) int32 {
	r.seed = (r.seed*multiplier + increment) & mask
	return int32(r.seed >> (48 - bits))
}

// Int31 returns a pseudo-random int32 covering the full 32-bit range.
func (r *Rand) Int31() int32 {
	return r.next(32)
}

// Int31n returns a pseudo-random int32 in [0, n). n must be positive.
func (r *Rand) Int31n(n int32) int32 {
	if n <= 0 {
		panic("legacyrand: n must be positive")
	}
	if n&-n == n {
		// Power of two fast path.
		return int32((int64(n) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		val := bits % n
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

// Range returns a pseudo-random int32 in [lo, hi], inclusive.
func (r *Rand) Range(lo, hi int32) int32 {
	if lo >= hi {
		return lo
	}
	return lo + r.Int31n(hi-lo+1)
}

// Float32 returns a pseudo-random float32 in [0, 1) using the top 24 bits.
func (r *Rand) Float32() float32 {
	return float32(r.next(24)) / float32(1<<24)
}

// Float64 returns a pseudo-random float64 in [0, 1) using 26+27 bits.
func (r *Rand) Float64() float64 {
	hi := int64(r.next(26))
	lo := int64(r.next(27))
	return float64((hi<<27)+lo) / float64(int64(1)<<53)
}

// Bool returns a pseudo-random boolean.
func (r *Rand) Bool() bool {
	return r.next(1) != 0
}
