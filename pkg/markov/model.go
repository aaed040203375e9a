package markov

import (
	"iter"
	"strconv"
	"strings"
)

// Window is an ordered run of consecutive tokens used as a model key.
type Window []string

// String joins the window's tokens with single spaces.
func (w Window) String() string {
	return strings.Join(w, " ")
}

// Model maps every window seen during training to a Counter of the tokens
// that immediately followed it. A Model is read-only once Train returns.
type Model struct {
	order        int
	vocab        map[string]int
	keys         []string
	windows      map[string]*windowEntry
	observations int
}

type windowEntry struct {
	window Window
	next   *Counter[string]
}

func newModel(order int) *Model {
	return &Model{
		order:   order,
		vocab:   make(map[string]int),
		windows: make(map[string]*windowEntry),
	}
}

// Order returns the number of tokens in each window.
func (m *Model) Order() int {
	return m.order
}

// Len returns the number of distinct windows in the model.
func (m *Model) Len() int {
	return len(m.keys)
}

// Continuations returns the counter of tokens observed after w. The counter
// belongs to the model and must not be modified.
func (m *Model) Continuations(w Window) (*Counter[string], bool) {
	key, ok := m.appendKey(nil, w)
	if !ok {
		return nil, false
	}
	e, ok := m.windows[string(key)]
	if !ok {
		return nil, false
	}
	return e.next, true
}

// Windows returns an iterator over every window in the order it was first seen.
func (m *Model) Windows() iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for _, key := range m.keys {
			if !yield(m.windows[key].window) {
				return
			}
		}
	}
}

// intern returns the vocabulary id of token, assigning the next free id the
// first time a token is seen.
func (m *Model) intern(token string) int {
	if id, ok := m.vocab[token]; ok {
		return id
	}
	id := len(m.vocab)
	m.vocab[token] = id
	return id
}

// appendKey appends the lookup key of w to buf. The key is the window's
// vocabulary ids joined by spaces. It reports false if any token of w is not
// in the vocabulary, in which case w cannot be a key of the model.
func (m *Model) appendKey(buf []byte, w []string) ([]byte, bool) {
	for j, token := range w {
		id, ok := m.vocab[token]
		if !ok {
			return buf, false
		}
		if j > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
	}
	return buf, true
}

// observe records next as a continuation of window.
func (m *Model) observe(keyBuf []byte, window Window, next string) []byte {
	keyBuf = keyBuf[:0]
	for j, token := range window {
		if j > 0 {
			keyBuf = append(keyBuf, ' ')
		}
		keyBuf = strconv.AppendInt(keyBuf, int64(m.intern(token)), 10)
	}
	m.intern(next)

	e, ok := m.windows[string(keyBuf)]
	if !ok {
		key := string(keyBuf)
		e = &windowEntry{window: window, next: NewCounter[string]()}
		m.windows[key] = e
		m.keys = append(m.keys, key)
	}
	e.next.Increment(next)
	m.observations++
	return keyBuf
}
