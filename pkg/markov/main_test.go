package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// scriptedSource is a Source that replays fixed values. IntN always returns
// index (clamped to n-1) and Float64 cycles through draws.
type scriptedSource struct {
	index int
	draws []float64
	next  int
}

func (s *scriptedSource) IntN(n int) int {
	return min(s.index, n-1)
}

func (s *scriptedSource) Float64() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

// drawing returns the Float64 value that makes the generator sample p.
func drawing(p float64) float64 {
	return 1 - p
}

// mustTrain trains a model from a space separated corpus or fails the test.
func mustTrain(t testing.TB, corpus string, order int) *Model {
	t.Helper()
	m, err := Train(Tokenize(corpus), order)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	return m
}

var (
	benchmarkCorpus []string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() []string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				sb.Reset()
				sb.WriteString("this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. ")
				break
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = Tokenize(sb.String())
	})
	return benchmarkCorpus
}
