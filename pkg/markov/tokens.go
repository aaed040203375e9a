package markov

import (
	"bufio"
	"io"
	"strings"
)

// Tokenizer splits input text into tokens and joins generated tokens back
// into text. It keeps the model and generator independent of how text is
// read and presented.
type Tokenizer interface {
	// NewStream returns a StreamTokenizer reading from r.
	NewStream(r io.Reader) StreamTokenizer
	// Join renders a generated token sequence as a single string.
	Join(tokens []string) string
}

// StreamTokenizer is a stateful tokenizer returning one token at a time.
type StreamTokenizer interface {
	// Next returns the next token. It returns io.EOF once the stream is consumed.
	Next() (string, error)
}

// WhitespaceTokenizer splits text on runs of Unicode whitespace and joins
// tokens with a single space.
type WhitespaceTokenizer struct {
	maxTokenSize int
}

// TokenizerOption configures a WhitespaceTokenizer.
type TokenizerOption func(*WhitespaceTokenizer)

// WithMaxTokenSize sets the longest token, in bytes, the stream can return.
// Default: bufio.MaxScanTokenSize
func WithMaxTokenSize(n int) TokenizerOption {
	return func(t *WhitespaceTokenizer) {
		t.maxTokenSize = n
	}
}

// NewWhitespaceTokenizer creates a WhitespaceTokenizer with the given options.
func NewWhitespaceTokenizer(opts ...TokenizerOption) *WhitespaceTokenizer {
	t := &WhitespaceTokenizer{maxTokenSize: bufio.MaxScanTokenSize}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewStream returns a stream over the whitespace separated words of r.
func (t *WhitespaceTokenizer) NewStream(r io.Reader) StreamTokenizer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(t.maxTokenSize, 64*1024)), t.maxTokenSize)
	scanner.Split(bufio.ScanWords)
	return &whitespaceStream{scanner: scanner}
}

// Join joins tokens with single spaces.
func (t *WhitespaceTokenizer) Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

type whitespaceStream struct {
	scanner *bufio.Scanner
}

func (s *whitespaceStream) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Tokenize splits text around runs of whitespace. The returned tokens share
// memory with text.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
