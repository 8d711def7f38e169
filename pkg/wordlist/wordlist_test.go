package wordlist

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gridwright/gridwright/pkg/apperr"
	"github.com/gridwright/gridwright/pkg/generator"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"words.json", FormatJSON},
		{"words.JSON", FormatJSON},
		{"words.toml", FormatTOML},
		{"words.txt", FormatText},
		{"words", FormatText},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRead_JSON(t *testing.T) {
	const doc = `[{"word": "coffee", "clue": "Morning drink"}, {"word": "tea"}]`
	got, err := Read(strings.NewReader(doc), FormatJSON)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []generator.WordInput{
		{Word: "coffee", Clue: "Morning drink"},
		{Word: "tea"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestRead_JSONMalformed(t *testing.T) {
	_, err := Read(strings.NewReader(`{"word": "not a list"}`), FormatJSON)
	if !apperr.Is(err, apperr.CodeInvalidWordList) {
		t.Errorf("Read() error = %v, want INVALID_WORD_LIST", err)
	}
}

func TestRead_TOML(t *testing.T) {
	const doc = `
[[words]]
word = "coffee"
clue = "Morning drink"

[[words]]
word = "tea"
clue = ""
`
	got, err := Read(strings.NewReader(doc), FormatTOML)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []generator.WordInput{
		{Word: "coffee", Clue: "Morning drink"},
		{Word: "tea"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestRead_Text(t *testing.T) {
	const doc = "# comment\ncoffee\tMorning drink\n\ntea\n"
	got, err := Read(strings.NewReader(doc), FormatText)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []generator.WordInput{
		{Word: "coffee", Clue: "Morning drink"},
		{Word: "tea"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestLoad_AutoDetects(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.toml")
	const doc = "[[words]]\nword = \"area\"\nclue = \"region\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].Word != "area" {
		t.Errorf("Load() = %v, want one entry for area", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !apperr.Is(err, apperr.CodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}
