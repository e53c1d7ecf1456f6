package nsga2

import (
	"math"
	"sort"
)

// Hypervolume2D computes the hypervolume indicator for a two-objective
// front relative to a reference point. Both coordinate
// extractors must return minimization-oriented values (lower is better);
// referencePoint should be no better than any solution in front on either
// axis. Only two objectives are supported — higher-dimensional hypervolume
// needs an algorithm like WFG, out of scope here.
func Hypervolume2D[F any](front []F, coord0, coord1 func(F) float64, referencePoint [2]float64) float64 {
	if len(front) == 0 {
		return 0
	}

	sorted := make([]F, len(front))
	copy(sorted, front)

	sort.Slice(sorted, func(i, j int) bool { return coord0(sorted[i]) < coord0(sorted[j]) })

	volume := 0.0
	previousY := referencePoint[1]

	for _, sol := range sorted {
		width := referencePoint[0] - coord0(sol)
		height := previousY - coord1(sol)

		if width > 0 && height > 0 {
			volume += width * height
		}

		if coord1(sol) < previousY {
			previousY = coord1(sol)
		}
	}

	return volume
}

// IGD computes the Inverted Generational Distance between an obtained
// front and a reference (true) front: the average, over every point of
// the reference front, of its Euclidean distance to the nearest point of
// the obtained front, generalized to an arbitrary number of objectives via
// the supplied coordinate extractors. Lower is better; +Inf if either
// front is empty.
func IGD[F any](obtained, reference []F, coords ...func(F) float64) float64 {
	if len(obtained) == 0 || len(reference) == 0 {
		return math.Inf(1)
	}

	total := 0.0

	for _, ref := range reference {
		best := math.Inf(1)

		for _, sol := range obtained {
			d := 0.0

			for _, c := range coords {
				diff := c(ref) - c(sol)
				d += diff * diff
			}

			d = math.Sqrt(d)

			if d < best {
				best = d
			}
		}

		total += best
	}

	return total / float64(len(reference))
}
