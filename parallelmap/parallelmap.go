// Package parallelmap supplies a default ParallelMap primitive for
// nsga2.Unrated.RateParallel: it fans a fitness function out across a
// bounded errgroup worker pool and collects results in index order.
package parallelmap

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Run applies fn to every element of genomes concurrently, bounded to
// workers goroutines (runtime.NumCPU() if workers <= 0), and returns the
// results in the same order as genomes. fn is assumed not to error or
// panic; nothing here recovers either.
func Run[G, F any](workers int) func(genomes []G, fn func(G) F) []F {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return func(genomes []G, fn func(G) F) []F {
		results := make([]F, len(genomes))

		if len(genomes) == 0 {
			return results
		}

		var group errgroup.Group
		group.SetLimit(workers)

		for i, genome := range genomes {
			i, genome := i, genome

			group.Go(func() error {
				results[i] = fn(genome)
				return nil
			})
		}

		_ = group.Wait()

		return results
	}
}
