package nsga2

import (
	"math/rand"
	"sort"
)

// SelectedSolution is one survivor chosen by a SelectionPolicy: its index
// into the fitness slice the policy was given, its assigned Pareto rank,
// crowding distance, and NSGP group size (always 1 for NSGA).
type SelectedSolution struct {
	Index     int
	Rank      int
	Crowding  float64
	GroupSize int
}

// SelectionPolicy picks mu survivors out of a Rated population's fitness
// values. NSGAPolicy and NSGPPolicy are the two variants the core ships.
type SelectionPolicy[F any] interface {
	Select(fitness []F, mo *MultiObjective[F], selected []int, mu int, rng *rand.Rand) []SelectedSolution
}

// NSGAPolicy implements the classic NSGA-II selection: rank by
// non-dominated front, break ties within a front by crowding distance.
type NSGAPolicy[F any] struct{}

// Select implements SelectionPolicy.
func (NSGAPolicy[F]) Select(fitness []F, mo *MultiObjective[F], selected []int, mu int, rng *rand.Rand) []SelectedSolution {
	if mu <= 0 || len(fitness) == 0 {
		return nil
	}

	if mu > len(fitness) {
		mu = len(fitness)
	}

	sorter := NewFrontSorter(fitness, mo, selected, rng)
	chosen := make([]SelectedSolution, 0, mu)

	rank := 0

	for {
		front, ok := sorter.Next()
		if !ok {
			break
		}

		cr := AssignCrowding(front, fitness, mo, selected)

		if len(chosen)+len(front) <= mu {
			for _, idx := range front {
				chosen = append(chosen, SelectedSolution{Index: idx, Rank: rank, Crowding: cr.Distance[idx], GroupSize: 1})
			}
		} else {
			remaining := mu - len(chosen)

			ordered := make([]int, len(front))
			copy(ordered, front)
			sort.SliceStable(ordered, func(i, j int) bool {
				return cr.Distance[ordered[i]] > cr.Distance[ordered[j]]
			})

			for _, idx := range ordered[:remaining] {
				chosen = append(chosen, SelectedSolution{Index: idx, Rank: rank, Crowding: cr.Distance[idx], GroupSize: 1})
			}

			break
		}

		rank++

		if len(chosen) >= mu {
			break
		}
	}

	sort.SliceStable(chosen, func(i, j int) bool {
		if chosen[i].Rank != chosen[j].Rank {
			return chosen[i].Rank < chosen[j].Rank
		}

		return chosen[i].Crowding > chosen[j].Crowding
	})

	return chosen
}
