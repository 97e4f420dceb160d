// Package neat implements NeuroEvolution of Augmenting Topologies (NEAT), a
// method for evolving the topology and weights of a feed-forward neural
// network together using a genetic algorithm.
package neat

import (
	"github.com/pkg/errors"

	"github.com/adipandas/goneat/neat/genetics"
)

// StopCriterion names the reduction applied to a generation's fitness vector
// to decide whether a run has reached its stop threshold.
type StopCriterion string

const (
	// StopCriterionMax stops once any genome's fitness reaches StopThreshold.
	StopCriterionMax StopCriterion = "max"
	// StopCriterionMean stops once the population's mean fitness reaches StopThreshold.
	StopCriterionMean StopCriterion = "mean"
)

// Options carries every run-level parameter for an evolutionary run: the
// population/task shape, the stop condition, the RNG seed, and overridable
// copies of the genetics package's default speciation/reproduction constants.
type Options struct {
	// PopulationSize is the number of genomes held in each generation.
	PopulationSize int `yaml:"pop_size"`
	// InputSize and OutputSize fix a run's network input/output arity.
	InputSize  int `yaml:"input_size"`
	OutputSize int `yaml:"output_size"`

	// StopThreshold and MaxGenerations bound a run: it ends when StopCriterion
	// applied to the fitness vector reaches StopThreshold, or MaxGenerations
	// generations have elapsed, whichever comes first.
	StopThreshold  float64       `yaml:"stop_threshold"`
	MaxGenerations int           `yaml:"max_generations"`
	StopCriterion  StopCriterion `yaml:"stop_criterion"`

	// Task names the fitness function to wire in the CLI driver (e.g. "xor").
	Task string `yaml:"task"`
	// Seed seeds the run's single process-wide random generator.
	Seed int64 `yaml:"seed"`
	// LogLevel selects the package logger's verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MinNodeCount is the first id drawn for a newly created hidden node; it
	// must exceed OutputSize.
	MinNodeCount int `yaml:"min_node_count"`
	// Elitism is the number of top members of each species copied unmodified
	// into the next generation.
	Elitism int `yaml:"elitism"`
	// CutoffPct is the fraction of each species (by descending fitness) kept
	// as the breeding pool.
	CutoffPct float64 `yaml:"cutoff_pct"`
	// MinFitnessRange floors the fitness range used to normalise adjusted
	// fitness, preventing division by a near-zero spread.
	MinFitnessRange float64 `yaml:"min_fitness_range"`
	// MinSpeciesSize floors the reproduction quota assigned to any species.
	MinSpeciesSize int `yaml:"min_species_size"`
	// CompatibilityThreshold is the maximum genome distance for a genome to
	// join an existing species during partitioning.
	CompatibilityThreshold float64 `yaml:"compatibility_threshold"`
}

// WithDefaults fills in zero-valued speciation/reproduction fields with the
// genetics package defaults, so a minimal Options literal (as used by tests
// and by experiments/xor) only needs to set the task-shape fields.
func (o *Options) WithDefaults() {
	if o.MinNodeCount == 0 {
		o.MinNodeCount = genetics.DefaultMinNodeCount
	}
	if o.Elitism == 0 {
		o.Elitism = genetics.DefaultElitism
	}
	if o.CutoffPct == 0 {
		o.CutoffPct = genetics.DefaultCutoffPct
	}
	if o.MinFitnessRange == 0 {
		o.MinFitnessRange = genetics.DefaultMinFitnessRange
	}
	if o.MinSpeciesSize == 0 {
		o.MinSpeciesSize = genetics.DefaultMinSpeciesSize
	}
	if o.CompatibilityThreshold == 0 {
		o.CompatibilityThreshold = genetics.DefaultCompatibilityThreshold
	}
	if o.StopCriterion == "" {
		o.StopCriterion = StopCriterionMax
	}
	if o.LogLevel == "" {
		o.LogLevel = string(LogLevelInfo)
	}
}

// Validate checks the loaded options for internal consistency, failing fast
// on anything next_generation/InitialPopulation would otherwise reject deep
// inside a run.
func (o *Options) Validate() error {
	if o.PopulationSize <= 0 {
		return errors.Errorf("pop_size must be positive, got %d", o.PopulationSize)
	}
	if o.InputSize <= 0 || o.OutputSize <= 0 {
		return errors.Errorf("input_size and output_size must be positive, got %d/%d", o.InputSize, o.OutputSize)
	}
	if o.OutputSize >= o.MinNodeCount {
		return errors.Errorf("output_size %d must be less than min_node_count %d", o.OutputSize, o.MinNodeCount)
	}
	if o.MaxGenerations <= 0 {
		return errors.Errorf("max_generations must be positive, got %d", o.MaxGenerations)
	}
	if o.StopCriterion != StopCriterionMax && o.StopCriterion != StopCriterionMean {
		return errors.Errorf("unsupported stop_criterion: %q", o.StopCriterion)
	}
	return nil
}
