// Package chain adapts a third-party Markov chain implementation to the
// train/generate contract the rest of the bot depends on. The statistical
// internals live in gomarkov; this package owns only the tokenization
// policy, the seeded-walk logic, and the termination guarantee.
package chain

import (
	"errors"
	"fmt"

	"github.com/mb-14/gomarkov"
)

// ErrEmptyModel is returned when generation is requested against a state
// that has never been trained. Callers must suppress the reply rather than
// emit an empty message.
var ErrEmptyModel = errors.New("chain: model has no training data")

// ErrNoOutput is returned when a walk produced no tokens at all.
var ErrNoOutput = errors.New("chain: generation produced no tokens")

// Engine wraps the chain algorithm with a fixed ngram order, a token cap,
// and a pluggable tokenizer.
type Engine struct {
	order     int
	maxTokens int
	tokenize  Tokenizer
}

// NewEngine creates an engine. A nil tokenizer falls back to the default
// whitespace tokenizer.
func NewEngine(order, maxTokens int, tok Tokenizer) *Engine {
	if order < 1 {
		order = 1
	}
	if maxTokens < 1 {
		maxTokens = 64
	}
	if tok == nil {
		tok = Whitespace
	}
	return &Engine{order: order, maxTokens: maxTokens, tokenize: tok}
}

// Order returns the configured ngram order.
func (e *Engine) Order() int { return e.order }

// State is the compiled transition-frequency structure for one scope.
// It is not safe for concurrent use; the store mediates access.
type State struct {
	chain   *gomarkov.Chain
	entries int64
	tokens  int64
}

// NewState returns an empty state for this engine's order.
func (e *Engine) NewState() *State {
	return &State{chain: gomarkov.NewChain(e.order)}
}

// Entries reports how many texts have been folded into the state.
func (s *State) Entries() int64 { return s.entries }

// Tokens reports how many tokens have been folded into the state.
func (s *State) Tokens() int64 { return s.tokens }

// Empty reports whether the state has no training data.
func (s *State) Empty() bool { return s == nil || s.entries == 0 }

// Train folds one text into the state and returns the number of tokens it
// contributed. Texts that tokenize to nothing are ignored.
func (e *Engine) Train(s *State, text string) int {
	toks := e.tokenize(text)
	if len(toks) == 0 {
		return 0
	}
	s.chain.Add(toks)
	s.entries++
	s.tokens += int64(len(toks))
	return len(toks)
}

// Generate walks the transition structure and returns generated text. When
// seed is non-empty its trailing tokens pick the starting state if the
// chain has seen them; otherwise the walk starts from the start-of-sequence
// marker. The walk stops at the end-of-sequence marker or after maxTokens
// steps, so it terminates even when the learned structure contains cycles.
func (e *Engine) Generate(s *State, seed string) (string, error) {
	if s.Empty() {
		return "", ErrEmptyModel
	}

	out, err := e.walk(s, e.seedState(s, seed))
	if err == nil && len(out) == 0 {
		err = ErrNoOutput
	}
	if err != nil && seed != "" {
		// Seeded state led nowhere; retry from the start marker.
		out, err = e.walk(s, e.startState())
		if err == nil && len(out) == 0 {
			err = ErrNoOutput
		}
	}
	if err != nil {
		return "", err
	}
	return Join(out), nil
}

// startState is order copies of the start marker.
func (e *Engine) startState() gomarkov.NGram {
	st := make(gomarkov.NGram, e.order)
	for i := range st {
		st[i] = gomarkov.StartToken
	}
	return st
}

// seedState builds the initial ngram from the trailing seed tokens, padded
// with start markers when the seed is shorter than the order.
func (e *Engine) seedState(s *State, seed string) gomarkov.NGram {
	if seed == "" {
		return e.startState()
	}
	toks := e.tokenize(seed)
	if len(toks) == 0 {
		return e.startState()
	}
	st := e.startState()
	if len(toks) >= e.order {
		copy(st, toks[len(toks)-e.order:])
	} else {
		copy(st[e.order-len(toks):], toks)
	}
	return st
}

// walk performs the bounded randomized walk from the given state.
func (e *Engine) walk(s *State, state gomarkov.NGram) ([]string, error) {
	cur := state
	out := make([]string, 0, e.maxTokens)
	for len(out) < e.maxTokens {
		next, err := s.chain.Generate(cur)
		if err != nil {
			if len(out) > 0 {
				// Partial output is still a sentence; the unknown
				// state only means the walk cannot continue.
				return out, nil
			}
			return nil, fmt.Errorf("chain walk: %w", err)
		}
		if next == gomarkov.EndToken {
			break
		}
		out = append(out, next)

		ng := make(gomarkov.NGram, 0, e.order)
		ng = append(ng, cur[1:]...)
		ng = append(ng, next)
		cur = ng
	}
	return out, nil
}

// MarshalState serializes a state for the chain cache.
func MarshalState(s *State) ([]byte, error) {
	return s.chain.MarshalJSON()
}

// UnmarshalState restores a cached state. entries and tokens are carried in
// the cache row rather than the chain blob.
func (e *Engine) UnmarshalState(data []byte, entries, tokens int64) (*State, error) {
	c := gomarkov.NewChain(e.order)
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("failed to decode chain state: %w", err)
	}
	return &State{chain: c, entries: entries, tokens: tokens}, nil
}

// TransitionProbability exposes the learned frequency for a (state, next)
// pair. Used by tests to compare trained structures.
func (s *State) TransitionProbability(next string, state []string) (float64, error) {
	return s.chain.TransitionProbability(next, gomarkov.NGram(state))
}
