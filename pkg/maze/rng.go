package maze

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// rng wraps the seeded pseudo-random source for one generation run. Seeds
// are arbitrary strings hashed into the source state, so any two runs with
// the same seed replay the same draw sequence. There is deliberately no
// global or time-based fallback here; entropy is the caller's job.
type rng struct {
	*rand.Rand
}

func newRand(seed string) *rng {
	sum := sha256.Sum256([]byte(seed))
	return &rng{rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(sum[:8]))))}
}

// shuffle performs an in-place Fisher-Yates shuffle of the wall list.
func (r *rng) shuffle(walls []int) {
	r.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})
}

// between returns a uniform draw from [lo, hi] inclusive.
func (r *rng) between(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
