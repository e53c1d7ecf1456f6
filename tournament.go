package nsga2

import "math/rand"

// Tournament picks the best of k uniformly random candidates out of n,
// using better to compare. Candidates are drawn with
// replacement: duplicates among the k samples are allowed, since an
// n-sample without replacement is more expensive and the bias is
// negligible for n >> k.
func Tournament(rng *rand.Rand, n, k int, better func(i, j int) bool) int {
	best := rng.Intn(n)

	for i := 1; i < k; i++ {
		candidate := rng.Intn(n)
		if better(candidate, best) {
			best = candidate
		}
	}

	return best
}
