package seeder

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Rand is the seedable random source injected into every generator. A zero
// seed falls back to the wall clock, so unseeded runs still vary.
type Rand struct {
	*rand.Rand
}

func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rand.New(rand.NewSource(seed))}
}

// Between returns a uniform int in [min, max].
func (r *Rand) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) FloatBetween(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

func (r *Rand) Pick(pool []string) string {
	return pool[r.Intn(len(pool))]
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// WeightedPick selects one option with probability proportional to its
// weight. Weights need not sum to one.
func (r *Rand) WeightedPick(options []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := r.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return options[i]
		}
	}
	return options[len(options)-1]
}

// sample returns k elements chosen without replacement. k is capped at the
// population size; a short parent pool is a policy choice, not an error.
func sample[T any](r *Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	out := make([]T, 0, k)
	for _, i := range r.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

// shortID builds "{prefix}_{8 hex chars}" document ids.
func shortID(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
