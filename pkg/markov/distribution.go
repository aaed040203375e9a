package markov

// Outcome is one entry of a cumulative distribution: a token and the
// probability of drawing it or any entry before it.
type Outcome struct {
	Token      string
	Cumulative float64
}

// Distribution is a cumulative distribution over next tokens. Cumulative
// values never decrease and the last one is 1 up to rounding.
type Distribution []Outcome

// NewDistribution converts a counter into a cumulative distribution, keeping
// the counter's iteration order.
func NewDistribution(c *Counter[string]) Distribution {
	if c.Total() == 0 {
		return nil
	}
	total := float64(c.Total())
	dist := make(Distribution, 0, c.Len())
	var cdf float64
	for token, count := range c.All() {
		cdf += float64(count) / total
		dist = append(dist, Outcome{Token: token, Cumulative: cdf})
	}
	return dist
}

// Pick returns the first token whose cumulative probability reaches p. If
// rounding left every cumulative value below p, the last token is returned.
// It reports false only for an empty distribution.
func (d Distribution) Pick(p float64) (string, bool) {
	if len(d) == 0 {
		return "", false
	}
	for _, o := range d {
		if p <= o.Cumulative {
			return o.Token, true
		}
	}
	return d[len(d)-1].Token, true
}

// buildDistributions precomputes the distribution of every window in m,
// keyed like the model itself.
func buildDistributions(m *Model) map[string]Distribution {
	dists := make(map[string]Distribution, len(m.windows))
	for key, e := range m.windows {
		dists[key] = NewDistribution(e.next)
	}
	return dists
}
