package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CTAG07/Ngramist/pkg/corpus"
	"github.com/CTAG07/Ngramist/pkg/markov"
)

const fishCorpus = "one fish two fish red fish blue fish"

// setupTestConfig writes a config file into a fresh directory and returns its path.
func setupTestConfig(t *testing.T) string {
	dir := t.TempDir()
	config := Config{
		LogLevel:     "error",
		DatabasePath: filepath.Join(dir, "data", "test.db"),
		DefaultOrder: 2,
		DefaultWords: 10,
	}
	data, _ := json.Marshal(config)
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, configPath, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetArgs(append([]string{"--config", configPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	configPath := setupTestConfig(t)

	testCases := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "Seed text from stdin",
			stdin:    fishCorpus,
			args:     []string{"generate", "--start", "one fish", "-w", "2"},
			expected: "one fish two fish\n",
		},
		{
			name:     "Explicit stdin sentinel",
			stdin:    fishCorpus,
			args:     []string{"generate", "-", "--start", "red fish"},
			expected: "red fish blue fish\n",
		},
		{
			name:     "Order flag overrides config",
			stdin:    "a b c a b d",
			args:     []string{"generate", "-n", "3", "--start", "a b c", "-w", "5"},
			expected: "a b c a b d\n",
		},
		{
			name:     "Huge word count stops at the dead end",
			stdin:    "one two three",
			args:     []string{"generate", "--words=1099511627776", "--start", "one two"},
			expected: "one two three\n",
		},
		{
			name:     "Zero words prints the seed",
			stdin:    fishCorpus,
			args:     []string{"generate", "--start", "two fish", "-w", "0"},
			expected: "two fish\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, configPath, tc.stdin, tc.args...)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if out != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, out)
			}
		})
	}
}

func TestGenerateCommandFromFile(t *testing.T) {
	configPath := setupTestConfig(t)
	input := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(input, []byte(strings.Repeat("the cat sat on the mat and the dog sat on the cat\n", 5)), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := execute(t, configPath, "", "generate", input, "--seed", "7", "-w", "20")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	second, err := execute(t, configPath, "", "generate", input, "--seed", "7", "-w", "20")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced different output:\n%s%s", first, second)
	}
	if n := len(strings.Fields(first)); n != 22 {
		t.Errorf("expected 22 words from a closed corpus, got %d: %q", n, first)
	}

	if _, err = execute(t, configPath, "", "generate", filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error for a missing input, got %v", err)
	}
}

func TestGenerateCommandOutputFile(t *testing.T) {
	configPath := setupTestConfig(t)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	out, err := execute(t, configPath, fishCorpus, "generate", "--start", "one fish", "-w", "1", "-o", outPath)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected nothing on stdout, got %q", out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if string(data) != "one fish two\n" {
		t.Errorf("output file = %q", data)
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	configPath := setupTestConfig(t)

	testCases := []struct {
		name      string
		stdin     string
		args      []string
		expectErr error
	}{
		{name: "Corpus too short", stdin: "hello", args: []string{"generate"}, expectErr: markov.ErrEmptyModel},
		{name: "Zero order", stdin: fishCorpus, args: []string{"generate", "-n", "0"}, expectErr: markov.ErrConfiguration},
		{name: "Negative words", stdin: fishCorpus, args: []string{"generate", "--words=-1"}, expectErr: markov.ErrInvalidLength},
		{name: "Negative prune threshold", stdin: fishCorpus, args: []string{"generate", "--prune=-1"}, expectErr: markov.ErrConfiguration},
		{name: "Seed shorter than order", stdin: fishCorpus, args: []string{"generate", "--start", "fish"}, expectErr: markov.ErrInvalidSeed},
		{name: "Missing stored corpus", stdin: "", args: []string{"generate", "corpus:nope"}, expectErr: corpus.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, configPath, tc.stdin, tc.args...)
			if !errors.Is(err, tc.expectErr) {
				t.Errorf("expected %v, got %v", tc.expectErr, err)
			}
		})
	}
}

func TestCorpusCommands(t *testing.T) {
	configPath := setupTestConfig(t)

	if _, err := execute(t, configPath, "one fish two fish", "corpus", "add", "fish"); err != nil {
		t.Fatalf("corpus add failed: %v", err)
	}
	if _, err := execute(t, configPath, "red fish blue fish", "corpus", "append", "fish", "-"); err != nil {
		t.Fatalf("corpus append failed: %v", err)
	}

	out, err := execute(t, configPath, "", "corpus", "show", "fish")
	if err != nil {
		t.Fatalf("corpus show failed: %v", err)
	}
	if out != "one fish two fish\nred fish blue fish\n" {
		t.Errorf("corpus show = %q", out)
	}

	out, err = execute(t, configPath, "", "corpus", "list")
	if err != nil {
		t.Fatalf("corpus list failed: %v", err)
	}
	if !strings.HasPrefix(out, "fish\t") {
		t.Errorf("corpus list = %q", out)
	}

	out, err = execute(t, configPath, "", "generate", "corpus:fish", "--start", "two fish", "-w", "3")
	if err != nil {
		t.Fatalf("generate from corpus failed: %v", err)
	}
	if out != "two fish red fish blue\n" {
		t.Errorf("generate from corpus = %q", out)
	}

	if _, err = execute(t, configPath, "", "corpus", "rm", "fish"); err != nil {
		t.Fatalf("corpus rm failed: %v", err)
	}
	if _, err = execute(t, configPath, "", "corpus", "show", "fish"); !errors.Is(err, corpus.ErrNotFound) {
		t.Errorf("expected ErrNotFound after rm, got %v", err)
	}
}

func TestStatsCommand(t *testing.T) {
	configPath := setupTestConfig(t)

	out, err := execute(t, configPath, "the cat sat the cat ran", "stats", "--json")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	var stats markov.ModelStats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("stats output is not JSON: %v\n%s", err, out)
	}
	want := markov.ModelStats{Order: 2, Windows: 3, Vocabulary: 4, Observations: 4, MaxBranching: 2}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}

	out, err = execute(t, configPath, "the cat sat the cat ran", "stats", "-n", "1")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "windows:       3\n") {
		t.Errorf("unexpected stats output:\n%s", out)
	}
}
