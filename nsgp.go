package nsga2

import (
	"math"
	"math/rand"
	"sort"
)

// NSGPPolicy implements the NSGP selection policy (Watchareeruetai et al.,
// 2010): within each front, group solutions of similar fitness and select
// by round-robin across groups instead of by raw crowding distance.
// Epsilon is the similarity threshold: a solution joins an existing group
// of its front iff, for every considered objective, its normalized distance
// to that group's first member is strictly less than Epsilon (see
// groupByFitness); it is not compared with the group's other members.
type NSGPPolicy[F any] struct {
	Epsilon float64
}

type nsgpGroup struct {
	members []int // sorted by objective 0 ascending-best; mutated as rounds pick members
	size    int   // original size, recorded once and never mutated
}

type nsgpFront struct {
	rank     int
	groups   []*nsgpGroup
	crowding map[int]float64
}

// Select implements SelectionPolicy.
func (p NSGPPolicy[F]) Select(fitness []F, mo *MultiObjective[F], selected []int, mu int, rng *rand.Rand) []SelectedSolution {
	if mu <= 0 || len(fitness) == 0 || len(selected) == 0 {
		return nil
	}

	if mu > len(fitness) {
		mu = len(fitness)
	}

	sorter := NewFrontSorter(fitness, mo, selected, rng)
	fronts := sorter.FrontsUntil(mu)

	obj0 := mo.Objectives[selected[0]]
	better0 := func(a, b int) bool { return obj0.Compare(fitness[a], fitness[b]) == Less }

	nsgpFronts := make([]nsgpFront, 0, len(fronts))

	for rank, front := range fronts {
		cr := AssignCrowding(front, fitness, mo, selected)
		groups := groupByFitness(front, fitness, mo, selected, cr.Spread, p.Epsilon)

		crowding := make(map[int]float64, len(front))

		for _, g := range groups {
			sum := 0.0
			for _, m := range g.members {
				sum += cr.Distance[m]
			}

			mean := sum / float64(len(g.members))
			for _, m := range g.members {
				crowding[m] = mean
			}

			sort.Slice(g.members, func(i, j int) bool { return better0(g.members[i], g.members[j]) })
			g.size = len(g.members)
		}

		sort.Slice(groups, func(i, j int) bool {
			return better0(groups[i].members[0], groups[j].members[0])
		})

		nsgpFronts = append(nsgpFronts, nsgpFront{rank: rank, groups: groups, crowding: crowding})
	}

	return roundRobinSelect(nsgpFronts, mu, rng)
}

// groupByFitness performs greedy first-fit grouping: solutions are visited
// in front's own order (AssignCrowding leaves that slice unchanged), and each joins
// the first existing group whose representative (the group's first
// member) it is similar to, or starts a new group.
func groupByFitness[F any](front []int, fitness []F, mo *MultiObjective[F], selected []int, spread []float64, epsilon float64) []*nsgpGroup {
	var groups []*nsgpGroup

	for _, idx := range front {
		placed := false

		for _, g := range groups {
			if similarFitness(fitness, mo, selected, spread, idx, g.members[0], epsilon) {
				g.members = append(g.members, idx)
				placed = true

				break
			}
		}

		if !placed {
			groups = append(groups, &nsgpGroup{members: []int{idx}})
		}
	}

	return groups
}

func similarFitness[F any](fitness []F, mo *MultiObjective[F], selected []int, spread []float64, a, b int, epsilon float64) bool {
	for m, objIdx := range selected {
		obj := mo.Objectives[objIdx]
		d := math.Abs(obj.Distance(fitness[a], fitness[b]))
		s := spread[m]

		if s == 0 {
			if d != 0 {
				return false
			}

			continue
		}

		if d/s >= epsilon {
			return false
		}
	}

	return true
}

// roundRobinSelect implements the round-robin selection phase:
// round 0 takes the elite (index 0) of front 0's first group and one random
// member from every other non-empty group across all fronts; every
// subsequent round takes one random member from each remaining non-empty
// group. Empty groups drop out. Selection stops as soon as mu individuals
// have been chosen.
func roundRobinSelect(fronts []nsgpFront, mu int, rng *rand.Rand) []SelectedSolution {
	chosen := make([]SelectedSolution, 0, mu)

	for round := 0; len(chosen) < mu; round++ {
		progressed := false

		for fi := range fronts {
			fg := &fronts[fi]

			for gi, g := range fg.groups {
				if len(chosen) >= mu {
					break
				}

				if len(g.members) == 0 {
					continue
				}

				pos := rng.Intn(len(g.members))
				if round == 0 && fg.rank == 0 && gi == 0 {
					pos = 0
				}

				idx := g.members[pos]
				chosen = append(chosen, SelectedSolution{
					Index:     idx,
					Rank:      fg.rank,
					Crowding:  fg.crowding[idx],
					GroupSize: g.size,
				})

				g.members = append(g.members[:pos], g.members[pos+1:]...)
				progressed = true
			}

			if len(chosen) >= mu {
				break
			}
		}

		if !progressed {
			break
		}
	}

	return chosen
}
