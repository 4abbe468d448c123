package common

// splitmix64 scrambles a 64-bit value into a well-distributed one. Used to
// expand seeds and to derive independent streams.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// Hash2D derives a deterministic stream seed from a base seed and integer
// coordinates. Two calls with the same inputs always agree, so chunked
// generation stays reproducible no matter which worker runs which chunk.
//
// Parameters:
//   - seed: base world seed
//   - x: chunk coordinate
//   - y: chunk coordinate
//
// Returns:
//   - uint64: stream seed for the (x, y) cell
func Hash2D(seed uint64, x, y int) uint64 {
	h := splitmix64(seed ^ (uint64(uint32(x)) << 32) ^ uint64(uint32(y)))
	if h == 0 {
		h = 1
	}
	return h
}

// Rand is a small deterministic xorshift64* generator. Not cryptographic;
// it exists so world generation is reproducible from a seed.
type Rand struct {
	s uint64
}

// NewRand creates a generator seeded via splitmix64. A zero seed is remapped
// so the xorshift state never sticks at zero.
//
// Parameters:
//   - seed: any value, including 0
//
// Returns:
//   - *Rand: the generator
func NewRand(seed uint64) *Rand {
	s := splitmix64(seed)
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &Rand{s: s}
}

// NextU64 advances the state and returns the next raw value.
func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 0x2545F4914F6CDD1D
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Float32 returns a value in [0, 1).
func (r *Rand) Float32() float32 {
	return float32(r.NextU64()>>40) / (1 << 24)
}

// RangeF returns a value in [min, max).
func (r *Rand) RangeF(min, max float32) float32 {
	return min + r.Float32()*(max-min)
}

// Angle returns a value in [0, 2*pi).
func (r *Rand) Angle() float32 {
	return r.Float32() * 2 * 3.14159265358979
}
