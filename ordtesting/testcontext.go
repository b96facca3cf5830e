package ordtesting

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/indexmap-rs/ordermap/ordmap"
)

type TestConfig struct {
	// Seed fixes the RNG so that the generated data is the same from run to
	// run. Vary it across test cases, not across runs.
	Seed int64

	// KeyCorpus is the number of distinct keys to draw from. A corpus small
	// relative to the operation count forces overwrites and reinsertion of
	// removed keys. Defaults to 64.
	KeyCorpus int

	// ValueRange bounds the generated values, [0, ValueRange). Defaults to
	// 1 << 20.
	ValueRange int
}

type TestContext struct {
	T    *testing.T
	Cfg  TestConfig
	Rand *rand.Rand

	corpus []string
}

func NewTestContext(t *testing.T, cfg TestConfig) *TestContext {
	if cfg.KeyCorpus == 0 {
		cfg.KeyCorpus = 64
	}
	if cfg.ValueRange == 0 {
		cfg.ValueRange = 1 << 20
	}
	c := &TestContext{
		T:    t,
		Cfg:  cfg,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	c.corpus = make([]string, cfg.KeyCorpus)
	for i := range c.corpus {
		u, err := uuid.NewRandomFromReader(c.Rand)
		require.NoError(t, err)
		c.corpus[i] = u.String()
	}
	return c
}

// RandomKey draws a key from the corpus.
func (c *TestContext) RandomKey() string {
	return c.corpus[c.Rand.Intn(len(c.corpus))]
}

// RandomValue draws a value from [0, ValueRange).
func (c *TestContext) RandomValue() int {
	return c.Rand.Intn(c.Cfg.ValueRange)
}

// RandomPairs generates n pairs with corpus keys. Duplicate keys are likely
// whenever n approaches the corpus size; that is the point.
func (c *TestContext) RandomPairs(n int) []ordmap.Pair[string, int] {
	pairs := make([]ordmap.Pair[string, int], n)
	for i := range pairs {
		pairs[i] = ordmap.Pair[string, int]{Key: c.RandomKey(), Value: c.RandomValue()}
	}
	return pairs
}

// RandomMap builds a Map by inserting n random pairs. The resulting length
// is at most n, less when duplicate keys collapsed.
func (c *TestContext) RandomMap(n int) *ordmap.Map[string, int] {
	return ordmap.FromPairs(c.RandomPairs(n))
}

// MutateRandomly drives m and its model through ops random operations,
// checking invariants and model agreement after every step. The returned
// model reflects the final contents. Pass a nil model for a map known to be
// in the state RequireMatchesModel would accept against Pairs().
func (c *TestContext) MutateRandomly(m *ordmap.Map[string, int], model []ordmap.Pair[string, int], ops int) []ordmap.Pair[string, int] {
	t := c.T
	t.Helper()
	if model == nil {
		model = m.Pairs()
	}
	for op := 0; op < ops; op++ {
		switch c.Rand.Intn(6) {
		case 0, 1: // insert or overwrite
			k, v := c.RandomKey(), c.RandomValue()
			m.Insert(k, v)
			model = modelInsert(model, k, v)
		case 2: // order-preserving removal
			k := c.RandomKey()
			m.ShiftRemove(k)
			model, _ = modelShiftRemove(model, k)
		case 3: // order-breaking removal
			k := c.RandomKey()
			m.SwapRemove(k)
			model, _ = modelSwapRemove(model, k)
		case 4: // pop
			m.Pop()
			if len(model) > 0 {
				model = model[:len(model)-1]
			}
		case 5: // positional move
			if n := len(model); n > 1 {
				from, to := c.Rand.Intn(n), c.Rand.Intn(n)
				m.MoveIndex(from, to)
				model = modelMove(model, from, to)
			}
		}
		RequireInvariants(t, m)
		RequireMatchesModel(t, m, model)
	}
	return model
}

// RequireMatchesModel requires that m's entry sequence equals model exactly.
func RequireMatchesModel(t *testing.T, m *ordmap.Map[string, int], model []ordmap.Pair[string, int]) {
	t.Helper()
	require.Equal(t, model, m.Pairs())
}

func modelInsert(model []ordmap.Pair[string, int], k string, v int) []ordmap.Pair[string, int] {
	for i := range model {
		if model[i].Key == k {
			model[i].Value = v
			return model
		}
	}
	return append(model, ordmap.Pair[string, int]{Key: k, Value: v})
}

func modelShiftRemove(model []ordmap.Pair[string, int], k string) ([]ordmap.Pair[string, int], bool) {
	for i := range model {
		if model[i].Key == k {
			return append(model[:i], model[i+1:]...), true
		}
	}
	return model, false
}

func modelSwapRemove(model []ordmap.Pair[string, int], k string) ([]ordmap.Pair[string, int], bool) {
	for i := range model {
		if model[i].Key == k {
			n := len(model) - 1
			model[i] = model[n]
			return model[:n], true
		}
	}
	return model, false
}

func modelMove(model []ordmap.Pair[string, int], from, to int) []ordmap.Pair[string, int] {
	e := model[from]
	if from < to {
		copy(model[from:to], model[from+1:to+1])
	} else {
		copy(model[to+1:from+1], model[to:from])
	}
	model[to] = e
	return model
}
