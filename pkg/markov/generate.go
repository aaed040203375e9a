package markov

import (
	"fmt"
	"log/slog"
	"strings"
)

// Generate picks a uniformly random window of the model as a seed and extends
// it by up to size sampled tokens. The walk stops early, without error, when
// it reaches a window that has no continuation; the result therefore holds
// between Order() and Order()+size tokens. It returns ErrEmptyModel when the
// model has no windows.
func (g *Generator) Generate(size int) ([]string, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidLength, size)
	}
	if g.model.Len() == 0 {
		return nil, ErrEmptyModel
	}

	key := g.model.keys[g.source.IntN(len(g.model.keys))]
	return g.extend(g.model.windows[key].window, size), nil
}

// GenerateFrom extends a caller supplied seed by up to size sampled tokens.
// The output starts with the whole seed and the walk continues from its last
// Order() tokens. A seed ending in an unknown window yields the seed alone.
func (g *Generator) GenerateFrom(seed Window, size int) ([]string, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidLength, size)
	}
	if len(seed) < g.model.Order() {
		return nil, fmt.Errorf("%w (got %d tokens, order %d)", ErrInvalidSeed, len(seed), g.model.Order())
	}
	if g.model.Len() == 0 {
		return nil, ErrEmptyModel
	}
	return g.extend(seed, size), nil
}

// GenerateString is Generate with the tokens joined by single spaces.
func (g *Generator) GenerateString(size int) (string, error) {
	tokens, err := g.Generate(size)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, " "), nil
}

// maxPreallocTokens bounds the capacity reserved for generated tokens up
// front; longer walks grow the output as they go.
const maxPreallocTokens = 4096

// extend contains the main sampling loop. The current window is always the
// last Order() tokens of the output.
func (g *Generator) extend(seed Window, size int) []string {
	order := g.model.Order()
	out := make([]string, len(seed), len(seed)+min(size, maxPreallocTokens))
	copy(out, seed)

	var keyBuf []byte
	for generated := 0; generated < size; generated++ {
		window := out[len(out)-order:]

		var dist Distribution
		var ok bool
		keyBuf, ok = g.model.appendKey(keyBuf[:0], window)
		if ok {
			dist, ok = g.dists[string(keyBuf)]
		}
		if !ok {
			g.logger.Debug("Generation terminated due to unknown window",
				slog.String("window", Window(window).String()),
				slog.Int("generated_length", generated),
			)
			return out
		}

		next, ok := dist.Pick(g.draw())
		if !ok {
			g.logger.Debug("Generation terminated due to empty distribution",
				slog.String("window", Window(window).String()),
				slog.Int("generated_length", generated),
			)
			return out
		}
		out = append(out, next)
	}

	g.logger.Debug("Generation terminated by reaching size",
		slog.Int("size", size),
		slog.Int("total_length", len(out)),
	)
	return out
}
