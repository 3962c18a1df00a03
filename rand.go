package wordcloud

import "math/rand/v2"

// Rand is the source of randomness used to choose among placement
// candidates. *rand.Rand from math/rand/v2 satisfies it, so a seeded
// generator makes drawing deterministic:
//
//	r := rand.New(rand.NewPCG(1, 2))
//	canvas, _ := wordcloud.New(source, 640, 480, wordcloud.WithRand(r))
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// globalRand draws from the process-wide math/rand/v2 generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
