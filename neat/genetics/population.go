package genetics

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// Ancestry records the two parent genome ids that produced a child, or the zero
// value for a genome created directly by InitialPopulation (spec.md §3).
type Ancestry struct {
	HasParents bool
	P1, P2     int
}

// Population is an id->genome map plus the ancestry of every genome it has ever
// held in the current generation (spec.md §3).
type Population struct {
	Genomes   map[int]*Genome
	Ancestors map[int]Ancestry
}

// NewPopulation returns an empty population.
func NewPopulation() *Population {
	return &Population{
		Genomes:   make(map[int]*Genome),
		Ancestors: make(map[int]Ancestry),
	}
}

// InitialPopulation allocates size genomes, each with a fresh id and the initial
// topology for inputSize/outputSize (spec.md §4.7). outputSize must be strictly
// less than minNodeCount so that hidden-node keys (drawn starting at minNodeCount)
// never collide with output keys (spec.md §3, §7).
func InitialPopulation(size, inputSize, outputSize, minNodeCount int, counters *Counters, rng *rand.Rand) (*Population, error) {
	if outputSize >= minNodeCount {
		return nil, errors.Errorf("initial population: output size %d must be less than min node count %d", outputSize, minNodeCount)
	}

	pop := NewPopulation()
	for i := 0; i < size; i++ {
		gid := counters.NextGenomeID()
		pop.Genomes[gid] = NewGenome(gid, inputSize, outputSize, rng)
		pop.Ancestors[gid] = Ancestry{}
	}
	return pop, nil
}

// NewChild creates a child genome from parents p1 and p2 with fitnesses f1 and f2,
// per spec.md §4.7: the fitter parent is used as the asymmetric crossover's p1,
// edges and then nodes are crossed over, and the result is mutated.
func NewChild(p1, p2 *Genome, f1, f2 float64, counters *Counters, rng *rand.Rand) *Genome {
	if f1 < f2 {
		p1, p2 = p2, p1
	}

	child := &Genome{
		Key:        counters.NextGenomeID(),
		InputKeys:  append([]int(nil), p1.InputKeys...),
		OutputKeys: append([]int(nil), p1.OutputKeys...),
		Nodes:      make(map[int]*Node),
		Edges:      make(map[EdgeKey]*Edge),
	}

	p1.CrossoverEdges(p2, child, rng)
	p1.CrossoverNodes(p2, child, counters, rng)
	child.Mutate(counters, rng)
	return child
}

// Partition speciates the population against the species of the previous
// generation, per spec.md §4.7(a)-(b): each surviving species picks, from the
// current population, the closest genome to its old representative; every other
// genome joins the closest compatible species or starts a new one.
func (pop *Population) Partition(prev *Partitions, compatibilityThreshold float64, counters *Counters) *Partitions {
	unpartitioned := make(map[int]bool, len(pop.Genomes))
	for gid := range pop.Genomes {
		unpartitioned[gid] = true
	}

	next := NewPartitions()

	// Both loops below visit ids in ascending order rather than raw map iteration
	// order: each prior species removes its claimed genome from unpartitioned before
	// the next species picks, and each remaining genome's assignment can open a new
	// species that later genomes are compared against, so a non-deterministic
	// visitation order would change the resulting partitions from run to run even
	// though no rng draw is involved (spec.md §5).
	prevIDs := make([]int, 0, len(prev.ByID))
	for pid := range prev.ByID {
		prevIDs = append(prevIDs, pid)
	}
	sort.Ints(prevIDs)

	for _, pid := range prevIDs {
		p := prev.ByID[pid]
		candidates := sortedUnpartitioned(unpartitioned)
		if len(candidates) == 0 {
			continue
		}
		newRep := p.closestMember(candidates, pop)
		id := pid
		next.newPartition(&id, counters, []int{newRep}, pop.Genomes[newRep])
		delete(unpartitioned, newRep)
	}

	for _, gid := range sortedUnpartitioned(unpartitioned) {
		g := pop.Genomes[gid]
		if pid, ok := next.closestRepresentative(g, compatibilityThreshold); ok {
			next.ByID[pid].Members = append(next.ByID[pid].Members, gid)
		} else {
			next.newPartition(nil, counters, []int{gid}, g)
		}
	}

	return next
}

func sortedUnpartitioned(unpartitioned map[int]bool) []int {
	ids := make([]int, 0, len(unpartitioned))
	for gid := range unpartitioned {
		ids = append(ids, gid)
	}
	sort.Ints(ids)
	return ids
}
