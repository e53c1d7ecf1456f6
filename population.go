package nsga2

import (
	"math/rand"
	"sort"
)

// Unrated is a population whose individuals carry a genome but no fitness
// yet. It is produced by random-genome generation or by
// Ranked.Reproduce.
type Unrated[G, F any] struct {
	Individuals []Individual[G, F]
}

// NewUnrated wraps a slice of genomes as a fresh Unrated population.
func NewUnrated[G, F any](genomes []G) *Unrated[G, F] {
	individuals := make([]Individual[G, F], len(genomes))
	for i, g := range genomes {
		individuals[i] = NewIndividual[G, F](g)
	}

	return &Unrated[G, F]{Individuals: individuals}
}

// Rate evaluates fitness sequentially for every individual (state
// transition Unrated -> Rated).
func (u *Unrated[G, F]) Rate(fitness func(G) F) *Rated[G, F] {
	out := make([]Individual[G, F], len(u.Individuals))

	for i, ind := range u.Individuals {
		ind.Fitness = fitness(ind.Genome)
		ind.hasFit = true
		out[i] = ind
	}

	return &Rated[G, F]{Individuals: out}
}

// ParallelMap is the "map in parallel" primitive the driver requires for
// the rating stage: apply fn to every genome and return results in index
// order. The core never constructs one itself; it only
// calls whatever the caller wires in. See the parallelmap subpackage for a
// ready-made implementation built on an errgroup worker pool.
type ParallelMap[G, F any] func(genomes []G, fn func(G) F) []F

// RateParallel evaluates fitness via the caller-supplied ParallelMap
// primitive (state transition Unrated -> Rated).
func (u *Unrated[G, F]) RateParallel(fitness func(G) F, mapFn ParallelMap[G, F]) *Rated[G, F] {
	genomes := make([]G, len(u.Individuals))
	for i, ind := range u.Individuals {
		genomes[i] = ind.Genome
	}

	results := mapFn(genomes, fitness)

	out := make([]Individual[G, F], len(u.Individuals))
	for i, ind := range u.Individuals {
		ind.Fitness = results[i]
		ind.hasFit = true
		out[i] = ind
	}

	return &Rated[G, F]{Individuals: out}
}

// Rated is a population whose individuals all carry fitness but no rank or
// crowding distance.
type Rated[G, F any] struct {
	Individuals []Individual[G, F]
}

// Select runs a selection policy over the population's fitness values,
// producing a Ranked population of exactly min(mu, len(Individuals))
// survivors, sorted by (rank asc, crowding desc) (state transition Rated ->
// Ranked).
func (r *Rated[G, F]) Select(mu int, mo *MultiObjective[F], policy SelectionPolicy[F], selected []int, rng *rand.Rand) *Ranked[G, F] {
	fitness := make([]F, len(r.Individuals))
	for i, ind := range r.Individuals {
		fitness[i] = ind.Fitness
	}

	chosen := policy.Select(fitness, mo, selected, mu, rng)

	out := make([]Individual[G, F], len(chosen))
	for i, sel := range chosen {
		ind := r.Individuals[sel.Index]
		ind.Rank = sel.Rank
		ind.Crowding = sel.Crowding
		ind.GroupSize = sel.GroupSize
		ind.selected = true
		out[i] = ind
	}

	sort.SliceStable(out, func(i, j int) bool { return Better(&out[i], &out[j]) })

	return &Ranked[G, F]{Individuals: out}
}

// Ranked is a population of exactly the selection target size (or the full
// population when it was smaller), every individual carrying rank and
// crowding distance, sorted by (rank asc, crowding desc, insertion order).
type Ranked[G, F any] struct {
	Individuals []Individual[G, F]
}

// MaxRank returns the largest Pareto rank present, or -1 for an empty
// population.
func (r *Ranked[G, F]) MaxRank() int {
	max := -1

	for _, ind := range r.Individuals {
		if ind.Rank > max {
			max = ind.Rank
		}
	}

	return max
}

// ByRank returns the individuals belonging to the given Pareto rank, in the
// population's stable iteration order.
func (r *Ranked[G, F]) ByRank(rank int) []Individual[G, F] {
	var out []Individual[G, F]

	for _, ind := range r.Individuals {
		if ind.Rank == rank {
			out = append(out, ind)
		}
	}

	return out
}

// Reproduce creates lambda offspring: each is produced by tournament
// selecting two parents against the (rank asc, crowding desc) order and
// calling the user's mate callback (state transition Ranked -> a fresh
// Unrated population of size lambda).
func (r *Ranked[G, F]) Reproduce(rng *rand.Rand, lambda, k int, mate func(*rand.Rand, G, G) G) *Unrated[G, F] {
	n := len(r.Individuals)
	better := func(i, j int) bool { return Better(&r.Individuals[i], &r.Individuals[j]) }

	offspring := make([]Individual[G, F], lambda)
	for i := 0; i < lambda; i++ {
		p1 := Tournament(rng, n, k, better)
		p2 := Tournament(rng, n, k, better)
		child := mate(rng, r.Individuals[p1].Genome, r.Individuals[p2].Genome)
		offspring[i] = NewIndividual[G, F](child)
	}

	return &Unrated[G, F]{Individuals: offspring}
}

// Merge combines a Ranked parent population with a Rated offspring
// population into a single Rated population (state transition Ranked +
// Rated -> Rated). The union is unranked, so rank,
// crowding distance, and group size carried over from the parents are
// stale: rank and crowding are reset to 0, group size to its default of 1,
// and the selected flag is cleared.
func Merge[G, F any](parents *Ranked[G, F], offspring *Rated[G, F]) *Rated[G, F] {
	out := make([]Individual[G, F], 0, len(parents.Individuals)+len(offspring.Individuals))

	for _, ind := range parents.Individuals {
		ind.Rank = 0
		ind.Crowding = 0
		ind.GroupSize = 1
		ind.selected = false
		out = append(out, ind)
	}

	out = append(out, offspring.Individuals...)

	return &Rated[G, F]{Individuals: out}
}
