// Package tokenize provides the corpus tokenizer shared by every metric.
package tokenize

import "strings"

// Tokenize lower-cases the text and splits it on runs of whitespace.
// No stemming or punctuation stripping is applied; all metrics must see
// the same token stream, so this is the only tokenizer in the module.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
