package nsga2

import (
	"math"
	"sort"
)

// CrowdingResult holds the per-solution crowding distance and the
// per-objective spread computed for one front, keyed by the same solution
// indices passed to AssignCrowding.
type CrowdingResult struct {
	Distance map[int]float64
	Spread   []float64
}

// AssignCrowding computes the crowding distance of every solution in front
// across the objectives named by selected. It operates on a private copy
// of front: the assigner may re-sort its own working copy but must never
// mutate the slice it was handed.
func AssignCrowding[F any](front []int, fitness []F, mo *MultiObjective[F], selected []int) CrowdingResult {
	result := CrowdingResult{
		Distance: make(map[int]float64, len(front)),
		Spread:   make([]float64, len(selected)),
	}

	for _, idx := range front {
		result.Distance[idx] = 0
	}

	n := len(front)
	if n == 0 {
		return result
	}

	if n <= 2 {
		for m, objIdx := range selected {
			obj := mo.Objectives[objIdx]
			result.Spread[m] = math.Abs(obj.Distance(fitness[front[n-1]], fitness[front[0]]))
		}

		for _, idx := range front {
			result.Distance[idx] = math.Inf(1)
		}

		return result
	}

	k := float64(len(selected))

	working := make([]int, n)
	copy(working, front)

	for m, objIdx := range selected {
		obj := mo.Objectives[objIdx]

		sort.Slice(working, func(i, j int) bool {
			return obj.Compare(fitness[working[i]], fitness[working[j]]) == Less
		})

		lo, hi := working[0], working[n-1]
		result.Distance[lo] = math.Inf(1)
		result.Distance[hi] = math.Inf(1)

		spread := math.Abs(obj.Distance(fitness[hi], fitness[lo]))
		result.Spread[m] = spread

		if spread == 0 {
			continue
		}

		for i := 1; i < n-1; i++ {
			cur := working[i]
			if math.IsInf(result.Distance[cur], 1) {
				continue
			}

			contribution := math.Abs(obj.Distance(fitness[working[i+1]], fitness[working[i-1]])) / (k * spread)
			result.Distance[cur] += contribution
		}
	}

	return result
}

// Better reports whether a is preferred to b under the standard (rank
// asc, crowding desc) NSGA-II ordering: lower Pareto rank wins
// unconditionally; within the same rank, higher crowding distance wins.
func Better[G, F any](a, b *Individual[G, F]) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}

	return a.Crowding > b.Crowding
}
