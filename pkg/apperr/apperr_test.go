package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs(t *testing.T) {
	err := New(CodePuzzleNotFound, "puzzle %s", "abc")
	if !Is(err, CodePuzzleNotFound) {
		t.Errorf("Is() = false, want true")
	}
	if Is(err, CodeInternal) {
		t.Errorf("Is() matched wrong code")
	}
	if Is(errors.New("plain"), CodeInternal) {
		t.Errorf("Is() matched a plain error")
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeStore, cause, "save puzzle")
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() lost the cause")
	}
	if GetCode(err) != CodeStore {
		t.Errorf("GetCode() = %q, want %q", GetCode(err), CodeStore)
	}
}

func TestIs_UnwrapsChain(t *testing.T) {
	inner := New(CodeGeneration, "not enough words placed")
	outer := fmt.Errorf("request failed: %w", inner)
	if !Is(outer, CodeGeneration) {
		t.Errorf("Is() did not unwrap the chain")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(CodeInvalidInput, "bad word")); got != "bad word" {
		t.Errorf("UserMessage() = %q, want bad word", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want plain", got)
	}
}

func TestError_String(t *testing.T) {
	err := Wrap(CodeCache, errors.New("conn refused"), "redis set")
	want := "CACHE_ERROR: redis set: conn refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
