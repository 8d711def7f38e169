package generator

import "strings"

// WordInput is a raw candidate entry: an answer word and its clue text.
// Words may arrive in any case with surrounding whitespace; Normalize
// canonicalizes them before placement.
type WordInput struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
}

// Normalize uppercases and trims each input word and filters out entries
// that cannot be placed: words shorter than two characters after trimming,
// or containing any character outside A-Z. Clues are trimmed but otherwise
// unvalidated; an empty clue is allowed. Rejection is silent: malformed
// entries are not errors, they simply never reach the grid.
//
// Normalize is a pure transform: the input slice is not modified and the
// relative order of surviving entries is preserved.
func Normalize(inputs []WordInput) []WordInput {
	out := make([]WordInput, 0, len(inputs))
	for _, in := range inputs {
		word := strings.ToUpper(strings.TrimSpace(in.Word))
		if !placeable(word) {
			continue
		}
		out = append(out, WordInput{Word: word, Clue: strings.TrimSpace(in.Clue)})
	}
	return out
}

// placeable reports whether a normalized word is at least two characters of
// uppercase ASCII letters.
func placeable(word string) bool {
	if len(word) < 2 {
		return false
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
