package nsga2

import (
	"fmt"
	"math/rand"
	"time"
)

// Collaborators bundles every callback the driver treats as an opaque,
// problem-specific collaborator. None of these are owned by the core;
// the driver only calls them.
type Collaborators[G, F any] struct {
	// RandomGenome produces one fresh genome. Required.
	RandomGenome func(rng *rand.Rand) G

	// Fitness scores a genome. Must be safe to call from any worker thread
	// concurrently with itself; the driver treats it as pure. Required.
	Fitness func(G) F

	// Mate produces one offspring genome from two parents, chosen by
	// tournament. Called only on the driver thread. Required.
	Mate func(rng *rand.Rand, a, b G) G

	// ParallelMap rates a batch of offspring genomes, returning fitness in
	// index order. Required.
	ParallelMap ParallelMap[G, F]

	// IsSolution, if set, is consulted on every member of the new parent
	// population after each selection; a single true triggers early
	// termination.
	IsSolution func(g G, f F) bool

	// PopulationMetric, if set, is invoked on the merged Rated population
	// between merge and select, and may rewrite fitness in place to encode
	// population-relative context such as behavioral diversity.
	PopulationMetric func(*Rated[G, F])
}

// Settings carries the driver's numeric configuration. See
// DriverSettings for the JSON-serializable counterpart used to load these
// from a file.
type Settings struct {
	Mu       int
	Lambda   int
	K        int
	NGen     int
	Selected []int
}

// LogEntry is passed to the driver's logging callback exactly once per
// generation, after selection and before the termination check's potential
// exit.
type LogEntry[G, F any] struct {
	Generation     int
	Elapsed        time.Duration
	SolutionsFound int
	Parents        *Ranked[G, F]
}

// LogFunc is the driver's logging callback.
type LogFunc[G, F any] func(LogEntry[G, F])

// Driver orchestrates the generational rate -> merge -> select -> reproduce
// loop. It owns the RNG and the running parent and offspring populations;
// nothing in the core besides the parallel fitness stage runs off the
// driver's goroutine.
type Driver[G, F any] struct {
	Settings       Settings
	MultiObjective *MultiObjective[F]
	Policy         SelectionPolicy[F]
	Rng            *rand.Rand
	Collaborators  Collaborators[G, F]
	Log            LogFunc[G, F]
}

// NewDriver validates settings and collaborators and returns a ready
// Driver. Settings and collaborator contract violations are programmer
// errors and are reported eagerly rather than discovered mid-run.
func NewDriver[G, F any](settings Settings, mo *MultiObjective[F], policy SelectionPolicy[F], rng *rand.Rand, collab Collaborators[G, F], log LogFunc[G, F]) (*Driver[G, F], error) {
	if settings.Mu <= 0 {
		return nil, fmt.Errorf("nsga2: Mu must be positive")
	}
	if settings.Lambda <= 0 {
		return nil, fmt.Errorf("nsga2: Lambda must be positive")
	}
	if settings.K <= 0 {
		return nil, fmt.Errorf("nsga2: K must be positive")
	}
	if settings.NGen <= 0 {
		return nil, fmt.Errorf("nsga2: NGen must be positive")
	}
	if len(settings.Selected) == 0 {
		return nil, fmt.Errorf("nsga2: at least one objective must be selected")
	}
	if mo == nil || len(mo.Objectives) == 0 {
		return nil, fmt.Errorf("nsga2: MultiObjective must carry at least one objective")
	}
	if policy == nil {
		return nil, fmt.Errorf("nsga2: SelectionPolicy is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("nsga2: Rng is required")
	}
	if collab.RandomGenome == nil || collab.Fitness == nil || collab.Mate == nil || collab.ParallelMap == nil {
		return nil, fmt.Errorf("nsga2: RandomGenome, Fitness, Mate, and ParallelMap collaborators are required")
	}

	return &Driver[G, F]{
		Settings:       settings,
		MultiObjective: mo,
		Policy:         policy,
		Rng:            rng,
		Collaborators:  collab,
		Log:            log,
	}, nil
}

// Run executes the generational rate -> merge -> select -> reproduce loop
// and returns the final Ranked population once either the is-solution
// predicate fires or the generation budget is exhausted.
func (d *Driver[G, F]) Run() *Ranked[G, F] {
	genomes := make([]G, d.Settings.Mu)
	for i := range genomes {
		genomes[i] = d.Collaborators.RandomGenome(d.Rng)
	}

	offspring := NewUnrated[G, F](genomes).RateParallel(d.Collaborators.Fitness, d.Collaborators.ParallelMap)
	parents := &Ranked[G, F]{}

	lastLog := time.Now()

	for gen := 0; ; gen++ {
		merged := Merge(parents, offspring)

		if d.Collaborators.PopulationMetric != nil {
			d.Collaborators.PopulationMetric(merged)
		}

		parents = merged.Select(d.Settings.Mu, d.MultiObjective, d.Policy, d.Settings.Selected, d.Rng)

		solutionsFound := 0
		if d.Collaborators.IsSolution != nil {
			for _, ind := range parents.Individuals {
				if d.Collaborators.IsSolution(ind.Genome, ind.Fitness) {
					solutionsFound++
				}
			}
		}

		now := time.Now()

		if d.Log != nil {
			d.Log(LogEntry[G, F]{
				Generation:     gen,
				Elapsed:        now.Sub(lastLog),
				SolutionsFound: solutionsFound,
				Parents:        parents,
			})
		}

		lastLog = now

		if solutionsFound > 0 {
			return parents
		}

		if gen >= d.Settings.NGen {
			return parents
		}

		offspringUnrated := parents.Reproduce(d.Rng, d.Settings.Lambda, d.Settings.K, d.Collaborators.Mate)
		offspring = offspringUnrated.RateParallel(d.Collaborators.Fitness, d.Collaborators.ParallelMap)
	}
}
