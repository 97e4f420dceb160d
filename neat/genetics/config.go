package genetics

// Default values for the speciation/reproduction parameters enumerated in
// spec.md §6. These are exposed as defaults (rather than fixed constants) because,
// unlike the node/edge mutation rates, the reference implementation's run-level
// driver treats them as tunable knobs; neat.Options carries overridable copies.
const (
	DefaultMinNodeCount           = 10
	DefaultElitism                = 2
	DefaultCutoffPct              = 0.2
	DefaultMinFitnessRange        = 1.0
	DefaultMinSpeciesSize         = 2
	DefaultCompatibilityThreshold = 3.0
)
