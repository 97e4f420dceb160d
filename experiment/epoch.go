package experiment

import (
	"math"
	"math/rand"
	"sort"

	"github.com/adipandas/goneat/neat"
	"github.com/adipandas/goneat/neat/genetics"
)

// nextGeneration advances the population by one generation, per spec.md
// §4.9: for every current species, copy its elite members unmodified, then
// breed the remainder from a cutoff-sized pool sampled with replacement, and
// finally respeciate the result against the species used as input.
func nextGeneration(fitnesses map[int]float64, pop *genetics.Population, parts *genetics.Partitions, opts *neat.Options, counters *genetics.Counters, rng *rand.Rand) (*genetics.Population, *genetics.Partitions, error) {
	adjusted, err := parts.AdjustFitnesses(fitnesses, opts.MinFitnessRange)
	if err != nil {
		return nil, nil, err
	}
	sizes := parts.NextPartitionSizes(adjusted, len(pop.Genomes), opts.MinSpeciesSize)

	next := genetics.NewPopulation()

	pids := make([]int, 0, len(parts.ByID))
	for pid := range parts.ByID {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	for _, pid := range pids {
		p := parts.ByID[pid]
		size := sizes[pid]

		members := append([]int(nil), p.Members...)
		sort.SliceStable(members, func(i, j int) bool {
			return fitnesses[members[i]] > fitnesses[members[j]]
		})

		elitism := opts.Elitism
		if elitism > len(members) {
			elitism = len(members)
		}
		for _, gid := range members[:elitism] {
			next.Genomes[gid] = pop.Genomes[gid]
			next.Ancestors[gid] = pop.Ancestors[gid]
			size--
		}

		cutoff := int(math.Ceil(opts.CutoffPct * float64(len(members))))
		if cutoff < 2 {
			cutoff = 2
		}
		if cutoff > len(members) {
			cutoff = len(members)
		}
		pool := members[:cutoff]

		for size > 0 {
			size--
			gid1 := pool[rng.Intn(len(pool))]
			gid2 := pool[rng.Intn(len(pool))]
			p1, p2 := pop.Genomes[gid1], pop.Genomes[gid2]
			f1, f2 := fitnesses[gid1], fitnesses[gid2]

			child := genetics.NewChild(p1, p2, f1, f2, counters, rng)
			next.Genomes[child.Key] = child
			next.Ancestors[child.Key] = genetics.Ancestry{HasParents: true, P1: gid1, P2: gid2}
		}
	}

	nextParts := next.Partition(parts, opts.CompatibilityThreshold, counters)
	return next, nextParts, nil
}
