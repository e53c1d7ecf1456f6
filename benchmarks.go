package nsga2

import "math"

// MOGenome is a real-valued decision vector used by the ZDT benchmark
// family, each component in [0,1].
type MOGenome []float64

// MOFitness is the pair of objective values a ZDT function produces.
type MOFitness struct {
	F0, F1 float64
}

func zdtG(x MOGenome) float64 {
	n := len(x)
	if n <= 1 {
		return 1
	}

	sum := 0.0
	for _, xi := range x[1:] {
		sum += xi
	}

	return 1 + 9*sum/float64(n-1)
}

// ZDT1 is Zitzler, Deb & Thiele's first benchmark: a convex Pareto front
// (f1 = g * (1 - sqrt(f0/g))). The global minimum front is at g = 1.
func ZDT1(x MOGenome) MOFitness {
	f0 := x[0]
	g := zdtG(x)
	f1 := g * (1 - math.Sqrt(f0/g))

	return MOFitness{F0: f0, F1: f1}
}

// ZDT2 is ZDT1's non-convex counterpart (f1 = g * (1 - (f0/g)^2)).
func ZDT2(x MOGenome) MOFitness {
	f0 := x[0]
	g := zdtG(x)
	ratio := f0 / g
	f1 := g * (1 - ratio*ratio)

	return MOFitness{F0: f0, F1: f1}
}

// ZDT3 adds a discontinuous, disconnected Pareto front to ZDT1's shape via
// a sinusoidal term.
func ZDT3(x MOGenome) MOFitness {
	f0 := x[0]
	g := zdtG(x)
	ratio := f0 / g
	f1 := g * (1 - math.Sqrt(ratio) - ratio*math.Sin(10*math.Pi*f0))

	return MOFitness{F0: f0, F1: f1}
}

// ZDTObjectives is the MultiObjective shared by the ZDT1/ZDT2/ZDT3
// benchmarks: minimize both coordinates of MOFitness.
func ZDTObjectives() *MultiObjective[MOFitness] {
	return NewMultiObjective(
		Minimize("f0", func(f MOFitness) float64 { return f.F0 }),
		Minimize("f1", func(f MOFitness) float64 { return f.F1 }),
	)
}
