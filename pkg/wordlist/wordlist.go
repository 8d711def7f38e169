// Package wordlist loads (word, clue) lists from files in several formats.
//
// Three formats are supported, auto-detected by file extension:
//
//   - JSON (.json): an array of {"word": ..., "clue": ...} objects
//   - TOML (.toml): a [[words]] table array with word and clue keys
//   - text (.txt or anything else): one entry per line, word and clue
//     separated by a tab; # starts a comment line
//
// Loaders return raw entries; normalization (casing, filtering) is the
// generator's job, so a word list file may carry lowercase or annotated
// words untouched.
package wordlist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gridwright/gridwright/pkg/apperr"
	"github.com/gridwright/gridwright/pkg/generator"
)

// Format identifies a word list file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// DetectFormat picks a format from the file extension.
// Unknown extensions fall back to the text format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Load reads a word list file, auto-detecting the format from its extension.
func Load(path string) ([]generator.WordInput, error) {
	return LoadFormat(path, DetectFormat(path))
}

// LoadFormat reads a word list file with an explicit format.
func LoadFormat(path string, format Format) ([]generator.WordInput, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.CodeFileNotFound, err, "word list %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	words, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Read parses a word list from r in the given format.
func Read(r io.Reader, format Format) ([]generator.WordInput, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatTOML:
		return readTOML(r)
	case FormatText:
		return readText(r)
	default:
		return nil, apperr.New(apperr.CodeInvalidFormat, "unsupported word list format %q", format)
	}
}

func readJSON(r io.Reader) ([]generator.WordInput, error) {
	var words []generator.WordInput
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidWordList, err, "decode JSON word list")
	}
	return words, nil
}

// tomlList mirrors the TOML manifest layout:
//
//	[[words]]
//	word = "coffee"
//	clue = "Morning drink"
type tomlList struct {
	Words []tomlWord `toml:"words"`
}

type tomlWord struct {
	Word string `toml:"word"`
	Clue string `toml:"clue"`
}

func readTOML(r io.Reader) ([]generator.WordInput, error) {
	var list tomlList
	if _, err := toml.NewDecoder(r).Decode(&list); err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidWordList, err, "decode TOML word list")
	}
	words := make([]generator.WordInput, len(list.Words))
	for i, w := range list.Words {
		words[i] = generator.WordInput{Word: w.Word, Clue: w.Clue}
	}
	return words, nil
}

func readText(r io.Reader) ([]generator.WordInput, error) {
	var words []generator.WordInput
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, clue, _ := strings.Cut(text, "\t")
		words = append(words, generator.WordInput{
			Word: strings.TrimSpace(word),
			Clue: strings.TrimSpace(clue),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidWordList, err, "read text word list (line %d)", line)
	}
	return words, nil
}
