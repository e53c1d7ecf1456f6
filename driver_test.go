package nsga2

import (
	"math"
	"math/rand"
	"testing"
)

type zdtGenome [2]float64

type zdtFitness struct{ f0, f1 float64 }

func zdt1Fitness(x zdtGenome) zdtFitness {
	g := 1.0
	f0 := x[0]
	f1 := g * (1 - math.Sqrt(f0/g))

	return zdtFitness{f0: f0, f1: f1}
}

func zdtObjectives() *MultiObjective[zdtFitness] {
	return NewMultiObjective(
		Minimize("f0", func(f zdtFitness) float64 { return f.f0 }),
		Minimize("f1", func(f zdtFitness) float64 { return f.f1 }),
	)
}

func sequentialMap[G, F any](genomes []G, fn func(G) F) []F {
	out := make([]F, len(genomes))
	for i, g := range genomes {
		out[i] = fn(g)
	}

	return out
}

func sbxChild(rng *rand.Rand, a, b zdtGenome) zdtGenome {
	const eta = 2.0

	var child zdtGenome

	for i := range a {
		u := rng.Float64()

		var beta float64
		if u <= 0.5 {
			beta = math.Pow(2*u, 1/(eta+1))
		} else {
			beta = math.Pow(1/(2*(1-u)), 1/(eta+1))
		}

		v := 0.5 * ((1+beta)*a[i] + (1-beta)*b[i])
		child[i] = math.Min(1, math.Max(0, v))
	}

	return child
}

// TestZDT1ConvergenceSanity checks that the driver's rank-0 front
// converges close to the true ZDT1 Pareto front after a full run.
func TestZDT1ConvergenceSanity(t *testing.T) {
	settings := Settings{Mu: 100, Lambda: 100, K: 2, NGen: 100, Selected: []int{0, 1}}

	collab := Collaborators[zdtGenome, zdtFitness]{
		RandomGenome: func(rng *rand.Rand) zdtGenome {
			return zdtGenome{rng.Float64(), rng.Float64()}
		},
		Fitness:     zdt1Fitness,
		Mate:        sbxChild,
		ParallelMap: sequentialMap[zdtGenome, zdtFitness],
	}

	driver, err := NewDriver[zdtGenome, zdtFitness](
		settings, zdtObjectives(), NSGAPolicy[zdtFitness]{}, rand.New(rand.NewSource(1)), collab, nil,
	)
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	result := driver.Run()

	front0 := result.ByRank(0)
	if len(front0) == 0 {
		t.Fatal("expected a non-empty rank-0 front")
	}

	for _, ind := range front0 {
		dev := math.Abs(ind.Fitness.f1 - (1 - math.Sqrt(ind.Fitness.f0)))
		if dev >= 0.05 {
			t.Errorf("rank-0 solution f0=%f f1=%f deviates from the true front by %f (>= 0.05)",
				ind.Fitness.f0, ind.Fitness.f1, dev)
		}
	}
}

// TestEarlyTermination checks that an IsSolution predicate returning true
// for every individual stops the driver after generation 0, with
// SolutionsFound equal to Mu.
func TestEarlyTermination(t *testing.T) {
	settings := Settings{Mu: 20, Lambda: 20, K: 2, NGen: 100, Selected: []int{0, 1}}

	var loggedSolutions int
	var loggedGeneration int

	collab := Collaborators[zdtGenome, zdtFitness]{
		RandomGenome: func(rng *rand.Rand) zdtGenome {
			return zdtGenome{rng.Float64(), rng.Float64()}
		},
		Fitness:     zdt1Fitness,
		Mate:        sbxChild,
		ParallelMap: sequentialMap[zdtGenome, zdtFitness],
		IsSolution:  func(g zdtGenome, f zdtFitness) bool { return true },
	}

	driver, err := NewDriver[zdtGenome, zdtFitness](
		settings, zdtObjectives(), NSGAPolicy[zdtFitness]{}, rand.New(rand.NewSource(2)), collab,
		func(entry LogEntry[zdtGenome, zdtFitness]) {
			loggedSolutions = entry.SolutionsFound
			loggedGeneration = entry.Generation
		},
	)
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	result := driver.Run()

	if len(result.Individuals) != settings.Mu {
		t.Fatalf("expected final population of size mu=%d, got %d", settings.Mu, len(result.Individuals))
	}

	if loggedGeneration != 0 {
		t.Errorf("expected termination at generation 0, logged generation %d", loggedGeneration)
	}

	if loggedSolutions != settings.Mu {
		t.Errorf("expected solutions_found = mu (%d), got %d", settings.Mu, loggedSolutions)
	}
}

func TestNewDriverRejectsInvalidSettings(t *testing.T) {
	collab := Collaborators[zdtGenome, zdtFitness]{
		RandomGenome: func(rng *rand.Rand) zdtGenome { return zdtGenome{} },
		Fitness:      zdt1Fitness,
		Mate:         sbxChild,
		ParallelMap:  sequentialMap[zdtGenome, zdtFitness],
	}

	_, err := NewDriver[zdtGenome, zdtFitness](
		Settings{Mu: 0, Lambda: 1, K: 1, NGen: 1, Selected: []int{0}},
		zdtObjectives(), NSGAPolicy[zdtFitness]{}, rand.New(rand.NewSource(1)), collab, nil,
	)
	if err == nil {
		t.Error("expected an error for Mu = 0")
	}
}
