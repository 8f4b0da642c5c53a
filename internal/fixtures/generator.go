package fixtures

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinAccountNumber = 1000000
	MaxAccountNumber = 9999999

	DateLayout = "2006-01-02"
)

// DateWindow covers Start through Start+SpanDays, both ends inclusive.
type DateWindow struct {
	Start    time.Time
	SpanDays int
}

// End is the last day a generated date can fall on.
func (w DateWindow) End() time.Time {
	return w.Start.AddDate(0, 0, w.SpanDays)
}

// Contains reports whether a YYYY-MM-DD string falls inside the window.
func (w DateWindow) Contains(date string) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End())
}

// Generator draws fixture values from a single seeded source.
type Generator struct {
	rng  *rand.Rand
	seed uint64
}

// NewGenerator returns a generator for seed. A zero seed is replaced with one
// taken from the clock; Seed reports the value actually used.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

func (g *Generator) Seed() uint64 {
	return g.seed
}

// IntBetween returns an int in [min, max].
func (g *Generator) IntBetween(min, max int) int {
	return min + g.rng.IntN(max-min+1)
}

// Amount returns a uniform value in [min, max] rounded to cents.
func (g *Generator) Amount(min, max float64) float64 {
	v := min + g.rng.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func (g *Generator) Choice(options []string) string {
	return options[g.rng.IntN(len(options))]
}

// Date returns a day inside w formatted as YYYY-MM-DD.
func (g *Generator) Date(w DateWindow) string {
	return w.Start.AddDate(0, 0, g.IntBetween(0, w.SpanDays)).Format(DateLayout)
}

// AccountNumbers returns n random seven digit account numbers. Duplicates are
// possible and kept.
func (g *Generator) AccountNumbers(n int) []int {
	accounts := make([]int, n)
	for i := range accounts {
		accounts[i] = g.IntBetween(MinAccountNumber, MaxAccountNumber)
	}
	return accounts
}

func (g *Generator) AccountChoice(accounts []int) int {
	return accounts[g.rng.IntN(len(accounts))]
}
