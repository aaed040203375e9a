package markov

// Prune returns a copy of the model without the continuations observed
// minFreq times or fewer. Windows left without any continuation are dropped,
// and the vocabulary keeps only tokens that still appear in the model.
// This is useful for removing rare, and often noisy, transitions. The
// receiver is not modified.
func (m *Model) Prune(minFreq int) *Model {
	pruned := newModel(m.order)

	for _, key := range m.keys {
		e := m.windows[key]
		next := NewCounter[string]()
		for token, count := range e.next.All() {
			if count > minFreq {
				next.add(token, count)
			}
		}
		if next.Len() == 0 {
			continue
		}
		for _, token := range e.window {
			pruned.vocab[token] = m.vocab[token]
		}
		for token := range next.All() {
			pruned.vocab[token] = m.vocab[token]
		}
		pruned.windows[key] = &windowEntry{window: e.window, next: next}
		pruned.keys = append(pruned.keys, key)
		pruned.observations += next.Total()
	}
	return pruned
}
