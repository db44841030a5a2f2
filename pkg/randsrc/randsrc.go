// Package randsrc provides deterministic pseudo-random data sources for
// building reproducible test fixtures. Every source here is seeded from
// a constant, so the same request produces byte-identical output across
// runs and machines.
//
// None of these generators is suitable for security-sensitive use; they
// exist purely so fixtures can be regenerated instead of checked in.
package randsrc

import (
	mrand "math/rand"

	"github.com/seehuhn/mt19937"
)

// fixtureSeed is the constant seed shared by all fixture generators.
const fixtureSeed = 42

// byteBound is the exclusive upper bound for RandomBytes output. The
// value 0xFF never appears; existing fixtures depend on the narrower
// range, so it must not be widened to a full byte.
const byteBound = 255

// SeededRand returns a Mersenne Twister generator seeded with the fixed
// fixture seed. A fresh generator is constructed on every call; callers
// must not share one across independent fixture builds, or the output
// of one build would depend on how much the previous build consumed.
func SeededRand() *mrand.Rand {
	mt := mt19937.New()
	mt.Seed(fixtureSeed)
	return mrand.New(mt)
}

// RandomBytes returns a slice of n pseudo-random bytes, each drawn
// uniformly from [0, 255). The generator is re-seeded per call, so two
// calls with equal n return identical slices. n == 0 yields an empty
// slice.
func RandomBytes(n int) []byte {
	rng := SeededRand()
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Intn(byteBound))
	}
	return out
}
