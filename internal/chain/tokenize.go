package chain

import "strings"

// Tokenizer splits raw message text into chain tokens. The scheme is a
// swappable policy: the engine never assumes anything beyond "non-empty
// tokens in order".
type Tokenizer func(text string) []string

// Whitespace is the default tokenizer: split on whitespace, punctuation
// stays attached to its token.
func Whitespace(text string) []string {
	return strings.Fields(text)
}

// Join is the inverse policy used when emitting generated tokens.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}
