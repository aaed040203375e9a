package markov

import "testing"

func TestPrune(t *testing.T) {
	m := mustTrain(t, "a b a b a c", 1)
	// a -> {b:2, c:1}, b -> {a:2}

	pruned := m.Prune(1)
	a, ok := pruned.Continuations(Window{"a"})
	if !ok {
		t.Fatal("window [a] should survive pruning")
	}
	if a.Get("c") != 0 || a.Get("b") != 2 || a.Total() != 2 {
		t.Errorf("window [a] after pruning: b=%d c=%d total=%d, want 2, 0, 2", a.Get("b"), a.Get("c"), a.Total())
	}
	if got := pruned.Stats().Observations; got != 4 {
		t.Errorf("expected 4 observations after pruning, got %d", got)
	}

	// c only followed a, and that continuation is gone.
	if got := pruned.Stats().Vocabulary; got != 2 {
		t.Errorf("expected a vocabulary of 2 after pruning, got %d", got)
	}
	if _, ok := pruned.Continuations(Window{"c"}); ok {
		t.Error("pruned model should not know window [c]")
	}

	// The source model is untouched.
	orig, _ := m.Continuations(Window{"a"})
	if orig.Get("c") != 1 || orig.Total() != 3 || m.Stats().Vocabulary != 3 {
		t.Errorf("Prune modified the original model")
	}
}

func TestPruneDropsEmptyWindows(t *testing.T) {
	m := mustTrain(t, "a b a b a c", 1)

	pruned := m.Prune(2)
	if pruned.Len() != 0 || pruned.Stats().Vocabulary != 0 {
		t.Errorf("expected every window to be pruned, got %+v", pruned.Stats())
	}
	if _, err := NewGenerator(pruned).Generate(5); err == nil {
		t.Error("expected generation on a fully pruned model to fail")
	}

	if same := m.Prune(0); same.Len() != m.Len() || same.Stats() != m.Stats() {
		t.Errorf("Prune(0) changed the model: %+v vs %+v", same.Stats(), m.Stats())
	}
}
