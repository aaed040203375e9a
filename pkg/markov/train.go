package markov

import (
	"errors"
	"fmt"
	"io"
)

// Train builds a model of the given order from tokens. Every window of order
// consecutive tokens is paired with the token that follows it, so a sequence
// of length L yields at most L-order observations. A sequence that is not
// longer than order produces an empty model rather than an error.
//
// The model keeps references to the tokens slice; callers must not modify it
// afterwards.
func Train(tokens []string, order int) (*Model, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidOrder, order)
	}

	m := newModel(order)
	var keyBuf []byte
	for i := 0; i+order < len(tokens); i++ {
		// Cap the window so an append by a caller can never reach tokens[i+order].
		window := Window(tokens[i : i+order : i+order])
		keyBuf = m.observe(keyBuf, window, tokens[i+order])
	}
	return m, nil
}

// TrainStream drains stream and trains a model of the given order on the
// resulting tokens.
func TrainStream(stream StreamTokenizer, order int) (*Model, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidOrder, order)
	}

	var tokens []string
	for {
		token, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}
		tokens = append(tokens, token)
	}
	return Train(tokens, order)
}
