package nsga2

import "math"

// Minimize builds an Objective[F] over a float64-valued projection of F,
// ordering lower extracted values as better. It panics if extract ever
// returns NaN, since a total order has no value to assign a NaN pair:
// treating an invalid cost as silently comparable would let it survive
// dominance checks it has no business surviving.
func Minimize[F any](name string, extract func(F) float64) Objective[F] {
	return Objective[F]{
		Name: name,
		Compare: func(a, b F) Ordering {
			return compareFloat(extract(a), extract(b), name)
		},
		Distance: func(a, b F) float64 {
			return extract(a) - extract(b)
		},
	}
}

// Maximize builds an Objective[F] over a float64-valued projection of F,
// ordering higher extracted values as better.
func Maximize[F any](name string, extract func(F) float64) Objective[F] {
	return Objective[F]{
		Name: name,
		Compare: func(a, b F) Ordering {
			return compareFloat(extract(b), extract(a), name)
		},
		Distance: func(a, b F) float64 {
			return extract(b) - extract(a)
		},
	}
}

func compareFloat(a, b float64, name string) Ordering {
	if math.IsNaN(a) || math.IsNaN(b) {
		panic("nsga2: objective " + name + " produced NaN, total order is undefined")
	}

	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// WithProbability returns a copy of obj tagged with the given participation
// probability, for use with probabilistic-dominance non-dominated sorting.
// p is clamped to [0, 1].
func WithProbability[F any](obj Objective[F], p float64) Objective[F] {
	if p < 0 {
		p = 0
	}

	if p > 1 {
		p = 1
	}

	obj.Probability = p

	return obj
}
