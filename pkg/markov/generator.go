package markov

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// Source supplies the randomness used by a Generator. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalSource draws from the math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Generator produces text from a trained Model. It precomputes a cumulative
// distribution for every window when it is created, so sampling never
// divides. A Generator is not safe for concurrent use unless its Source is.
type Generator struct {
	model  *Model
	dists  map[string]Distribution
	source Source
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. By default the math/rand/v2 global
// generator is used.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithLogger sets the logger. By default, all logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator for model, building the distribution of
// every window up front.
func NewGenerator(model *Model, opts ...Option) *Generator {
	g := &Generator{
		model:  model,
		source: globalSource{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.dists = buildDistributions(model)

	g.logger.Debug("Distributions built",
		slog.Int("order", model.Order()),
		slog.Int("windows", len(g.dists)),
	)
	return g
}

// Model returns the model the generator samples from.
func (g *Generator) Model() *Model {
	return g.model
}

// Distribution returns the precomputed distribution for w.
func (g *Generator) Distribution(w Window) (Distribution, bool) {
	key, ok := g.model.appendKey(nil, w)
	if !ok {
		return nil, false
	}
	dist, ok := g.dists[string(key)]
	return dist, ok
}

// draw returns a uniform value in (0, 1].
func (g *Generator) draw() float64 {
	return 1 - g.source.Float64()
}
