// Package experiment drives the evolutionary loop: evaluating a population's
// fitness, advancing it one generation at a time, and stopping once the
// caller-supplied Evaluator's fitness vector crosses a configured threshold.
package experiment

import "github.com/adipandas/goneat/neat/genetics"

// Evaluator is the narrow interface through which an external task (XOR
// error, a gym-style environment reward) supplies per-genome fitness. The
// core evolutionary loop never implements environment stepping itself.
type Evaluator interface {
	// Evaluate computes a fitness value for every genome in pop. render asks
	// the evaluator to visualise its best-performing genome, if it is able
	// to; most evaluators ignore it except on the final call of a run.
	Evaluate(pop *genetics.Population, render bool) (map[int]float64, error)
}
