package cli

import (
	"testing"

	"github.com/gridwright/gridwright/pkg/generator"
)

func TestWordlistKey(t *testing.T) {
	words := []generator.WordInput{
		{Word: "cat", Clue: "Feline pet"},
		{Word: "axe", Clue: "Chopping tool"},
	}
	opts := generator.DefaultOptions()

	a := wordlistKey(words, opts)
	b := wordlistKey(words, opts)
	if a != b {
		t.Errorf("wordlistKey() not deterministic: %q vs %q", a, b)
	}

	reordered := []generator.WordInput{words[1], words[0]}
	if wordlistKey(reordered, opts) == a {
		t.Error("wordlistKey() should be sensitive to word order")
	}

	clueChanged := []generator.WordInput{
		{Word: "cat", Clue: "Tabby"},
		{Word: "axe", Clue: "Chopping tool"},
	}
	if wordlistKey(clueChanged, opts) == a {
		t.Error("wordlistKey() should be sensitive to clues")
	}

	opts.MinIntersections = 3
	if wordlistKey(words, opts) == a {
		t.Error("wordlistKey() should be sensitive to options")
	}

	if wordlistKey(words, generator.Options{}) != a {
		t.Error("wordlistKey() should normalize zero options to the defaults")
	}
}
