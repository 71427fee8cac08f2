package risk

// mt19937 is the classic 32-bit Mersenne Twister (Matsumoto & Nishimura,
// 1998). It implements golang.org/x/exp/rand.Source so gonum's
// distuv.Normal can draw from it directly; the engine needs this exact
// generator (not math/rand's) to satisfy the bitwise-reproducibility
// contract for a fixed seed independent of any particular Go runtime's
// default source.
type mt19937 struct {
	state [mtN]uint32
	index int
}

const (
	mtN          = 624
	mtM          = 397
	mtMatrixA    = 0x9908b0df
	mtUpperMask  = 0x80000000
	mtLowerMask  = 0x7fffffff
	mtInitialMul = 1812433253
)

func newMT19937(seed uint64) *mt19937 {
	m := &mt19937{}
	m.Seed(seed)
	return m
}

// Seed reinitializes the generator state from a 32-bit seed, discarding
// any bits of seed above the low 32.
func (m *mt19937) Seed(seed uint64) {
	m.state[0] = uint32(seed)
	for i := 1; i < mtN; i++ {
		prev := m.state[i-1]
		m.state[i] = mtInitialMul*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtN
}

func (m *mt19937) generate() {
	for i := 0; i < mtN; i++ {
		y := (m.state[i] & mtUpperMask) | (m.state[(i+1)%mtN] & mtLowerMask)
		next := m.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		m.state[i] = next
	}
	m.index = 0
}

// uint32 returns the next tempered 32-bit output.
func (m *mt19937) uint32() uint32 {
	if m.index >= mtN {
		m.generate()
	}
	y := m.state[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 packs two consecutive 32-bit draws into one 64-bit value,
// satisfying golang.org/x/exp/rand.Source.
func (m *mt19937) Uint64() uint64 {
	hi := uint64(m.uint32())
	lo := uint64(m.uint32())
	return hi<<32 | lo
}
