package board

// PseudoRand is a xorshift64* generator, reproducible across platforms for a given seed.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15 // xorshift never leaves the zero state
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Intn returns a value in [0,n). n must be positive.
func (r *PseudoRand) Intn(n int) int {
	return int(r.Uint64() % uint64(n))
}

// RandomMove picks one legal move of side s, or reports false when there is none.
func (b *Board) RandomMove(s Side, r *PseudoRand) (Move, bool) {
	mvs := b.LegalMoves(s)
	if len(mvs) == 0 {
		return Move{}, false
	}
	return mvs[r.Intn(len(mvs))], true
}
