package experiment

import (
	"context"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/adipandas/goneat/neat"
	"github.com/adipandas/goneat/neat/genetics"
)

// Run drives the full evolutionary loop, per spec.md §4.9's `run`: it builds
// the initial population, repeatedly evaluates and advances it, and stops
// once opts.StopCriterion applied to the fitness vector reaches
// opts.StopThreshold or opts.MaxGenerations elapses, whichever comes first.
// It returns the best genome seen at the stopping generation and the
// accumulated fitness history.
func Run(ctx context.Context, eval Evaluator, opts *neat.Options) (*genetics.Genome, *History, error) {
	opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	if err := neat.InitLogger(opts.LogLevel); err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	counters := genetics.NewCounters(opts.MinNodeCount)

	pop, err := genetics.InitialPopulation(opts.PopulationSize, opts.InputSize, opts.OutputSize, opts.MinNodeCount, counters, rng)
	if err != nil {
		return nil, nil, err
	}
	parts := pop.Partition(genetics.NewPartitions(), opts.CompatibilityThreshold, counters)

	history := &History{}

	gen := 0
	for {
		select {
		case <-ctx.Done():
			return nil, history, ctx.Err()
		default:
		}
		gen++

		fitnesses, err := eval.Evaluate(pop, false)
		if err != nil {
			return nil, history, err
		}

		values := make([]float64, 0, len(fitnesses))
		for _, f := range fitnesses {
			values = append(values, f)
		}
		meanFitness := stat.Mean(values, nil)
		maxFitness := floats.Max(values)
		history.Record(meanFitness, maxFitness)

		criterion := maxFitness
		if opts.StopCriterion == neat.StopCriterionMean {
			criterion = meanFitness
		}

		if criterion >= opts.StopThreshold || gen > opts.MaxGenerations {
			best := bestGenome(pop, fitnesses)
			if opts.Task != "xor" {
				if _, err := eval.Evaluate(bestOnlyPopulation(best), true); err != nil {
					neat.LogRenderFailure(opts.Task, err)
				}
			}
			return best, history, nil
		}

		neat.LogGeneration(gen, meanFitness, maxFitness, len(pop.Genomes), len(parts.ByID))

		pop, parts, err = nextGeneration(fitnesses, pop, parts, opts, counters, rng)
		if err != nil {
			return nil, history, err
		}
	}
}

func bestGenome(pop *genetics.Population, fitnesses map[int]float64) *genetics.Genome {
	var bestID int
	bestFitness := 0.0
	first := true
	for gid, f := range fitnesses {
		if first || f > bestFitness {
			bestID, bestFitness, first = gid, f, false
		}
	}
	return pop.Genomes[bestID]
}

func bestOnlyPopulation(g *genetics.Genome) *genetics.Population {
	pop := genetics.NewPopulation()
	pop.Genomes[g.Key] = g
	return pop
}
