package genetics

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Partition is a species: an ordered set of genome ids sharing a representative
// genome carried over from the previous generation (spec.md §3).
type Partition struct {
	Key            int
	Members        []int
	Representative *Genome
}

// closestMember returns the id, among candidates, of the genome in pop closest to
// p's representative.
func (p *Partition) closestMember(candidates []int, pop *Population) int {
	best := candidates[0]
	bestDist := p.Representative.Dist(pop.Genomes[best])
	for _, gid := range candidates[1:] {
		d := p.Representative.Dist(pop.Genomes[gid])
		if d < bestDist {
			bestDist = d
			best = gid
		}
	}
	return best
}

// Partitions is the set of species for one generation (spec.md §3, §4.7).
type Partitions struct {
	ByID map[int]*Partition
}

// NewPartitions returns an empty species set.
func NewPartitions() *Partitions {
	return &Partitions{ByID: make(map[int]*Partition)}
}

// newPartition creates and registers a partition. If key is nil, a fresh id is
// drawn from counters.
func (ps *Partitions) newPartition(key *int, counters *Counters, members []int, representative *Genome) {
	var id int
	if key != nil {
		id = *key
	} else {
		id = counters.NextSpeciesID()
	}
	ps.ByID[id] = &Partition{Key: id, Members: members, Representative: representative}
}

// closestRepresentative returns the id of the species whose representative is
// within compatibilityThreshold of genome and closest among those that qualify, or
// (0, false) if none qualify (spec.md §4.7(b)). Species are visited in ascending id
// order rather than raw map iteration order, so a tie between two equally-close
// representatives always resolves to the same species for a given seed, matching
// NextPartitionSizes's reproducibility rationale.
func (ps *Partitions) closestRepresentative(genome *Genome, compatibilityThreshold float64) (int, bool) {
	pids := make([]int, 0, len(ps.ByID))
	for pid := range ps.ByID {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	found := false
	bestPID := 0
	bestDist := math.Inf(1)
	for _, pid := range pids {
		d := ps.ByID[pid].Representative.Dist(genome)
		if d < compatibilityThreshold && (!found || d < bestDist) {
			found = true
			bestDist = d
			bestPID = pid
		}
	}
	return bestPID, found
}

// AdjustFitnesses computes each species' adjusted (normalized) fitness, per
// spec.md §4.8: the per-species mean raw fitness, rescaled into [0, 1] using the
// population-wide fitness range (floored at minFitnessRange).
func (ps *Partitions) AdjustFitnesses(fitnesses map[int]float64, minFitnessRange float64) (map[int]float64, error) {
	if len(fitnesses) == 0 {
		return nil, errors.New("adjust fitnesses: fitness map must not be empty")
	}

	values := make([]float64, 0, len(fitnesses))
	for _, f := range fitnesses {
		values = append(values, f)
	}
	minFitness, maxFitness := values[0], values[0]
	for _, f := range values[1:] {
		if f < minFitness {
			minFitness = f
		}
		if f > maxFitness {
			maxFitness = f
		}
	}
	fitnessRange := math.Max(minFitnessRange, maxFitness-minFitness)

	adjusted := make(map[int]float64, len(ps.ByID))
	for pid, p := range ps.ByID {
		memberFitnesses := make([]float64, len(p.Members))
		for i, m := range p.Members {
			memberFitnesses[i] = fitnesses[m]
		}
		meanFitness := stat.Mean(memberFitnesses, nil)
		adjusted[pid] = (meanFitness - minFitness) / fitnessRange
	}
	return adjusted, nil
}

// NextPartitionSizes computes the per-species quota for the next generation, per
// spec.md §4.8.
func (ps *Partitions) NextPartitionSizes(adjustedFitnesses map[int]float64, popSize int, minSpeciesSize int) map[int]int {
	previousSizes := make(map[int]int, len(ps.ByID))
	for pid, p := range ps.ByID {
		previousSizes[pid] = len(p.Members)
	}

	afSum := 0.0
	for _, af := range adjustedFitnesses {
		afSum += af
	}

	// Deterministic iteration order keeps size adjustment reproducible for a given
	// seed: species are visited in ascending id order.
	pids := make([]int, 0, len(adjustedFitnesses))
	for pid := range adjustedFitnesses {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	sizes := make(map[int]float64, len(pids))
	for _, pid := range pids {
		var target float64
		if afSum > 0 {
			target = math.Max(float64(minSpeciesSize), adjustedFitnesses[pid]/afSum*float64(popSize))
		} else {
			target = float64(minSpeciesSize)
		}

		d := (target - float64(previousSizes[pid])) * 0.5
		c := math.Round(d)

		size := float64(previousSizes[pid])
		switch {
		case math.Abs(c) > 0:
			size += c
		case d > 0:
			size += 1
		case d < 0:
			size -= 1
		}
		sizes[pid] = size
	}

	total := 0.0
	for _, s := range sizes {
		total += s
	}
	if total == 0 {
		total = 1
	}
	normalizer := float64(popSize) / total

	result := make(map[int]int, len(sizes))
	for pid, s := range sizes {
		size := int(math.Round(s * normalizer))
		if size < minSpeciesSize {
			size = minSpeciesSize
		}
		result[pid] = size
	}
	return result
}
