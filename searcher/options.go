package searcher

import (
	"time"

	"golang.org/x/exp/rand"
)

type Option func(o *options)

type options struct {
	depth    int
	maxPlies int
	rng      *rand.Rand
}

// WithDepth sets the search budget in plies. Budgets above MaxSearchDepth are
// clamped.
func WithDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.depth = min(depth, MaxSearchDepth)
		}
	}
}

// WithMaxPlies bounds the length of a stochastic principal variation.
func WithMaxPlies(plies int) Option {
	return func(o *options) {
		if plies > 0 {
			o.maxPlies = plies
		}
	}
}

// WithRand sets the source of random tie-breaks.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{maxPlies: MaxVariationLength}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) depthOr(fallback int) int {
	if o.depth > 0 {
		return o.depth
	}
	return fallback
}

func (o *options) random() *rand.Rand {
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return o.rng
}
