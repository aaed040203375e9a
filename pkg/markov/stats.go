package markov

// ModelStats holds aggregated statistics for a trained model.
type ModelStats struct {
	Order        int // The number of tokens in each window
	Windows      int // The number of distinct windows
	Vocabulary   int // The number of distinct tokens appearing in a window or continuation
	Observations int // The number of window -> token transitions counted
	MaxBranching int // The largest number of distinct continuations of a single window
}

// Stats returns a snapshot of the model's statistics.
func (m *Model) Stats() ModelStats {
	stats := ModelStats{
		Order:        m.order,
		Windows:      len(m.keys),
		Vocabulary:   len(m.vocab),
		Observations: m.observations,
	}
	for _, e := range m.windows {
		stats.MaxBranching = max(stats.MaxBranching, e.next.Len())
	}
	return stats
}
