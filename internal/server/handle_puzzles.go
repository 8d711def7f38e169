package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/gridwright/gridwright/pkg/apperr"
	"github.com/gridwright/gridwright/pkg/cache"
	"github.com/gridwright/gridwright/pkg/generator"
	"github.com/gridwright/gridwright/pkg/puzzle"
)

// GenerateRequest is the body of POST /api/puzzles.
type GenerateRequest struct {
	Words   []generator.WordInput `json:"words"`
	Options generator.Options     `json:"options"`
}

func handleCreatePuzzle(logger *log.Logger, store Store, gencache cache.Cache, cacheTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", apperr.CodeInvalidInput)
			return
		}

		p, err := generateCached(r.Context(), logger, gencache, cacheTTL, req)
		if err != nil {
			writeError(w, statusForError(err), apperr.UserMessage(err), errorCode(err))
			return
		}

		stored, err := store.Save(r.Context(), p)
		if err != nil {
			logger.Error("saving puzzle", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error", apperr.CodeStore)
			return
		}

		writeJSON(w, http.StatusCreated, stored)
	}
}

func handleGetPuzzle(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, statusForError(err), apperr.UserMessage(err), errorCode(err))
			return
		}
		writeJSON(w, http.StatusOK, stored)
	}
}

// generateCached memoizes generation results in the cache. Cache failures
// degrade to a fresh generation rather than failing the request.
func generateCached(ctx context.Context, logger *log.Logger, gencache cache.Cache, ttl time.Duration, req GenerateRequest) (*puzzle.Puzzle, error) {
	key := requestKey(req)

	if data, ok, err := gencache.Get(ctx, key); err == nil && ok {
		var p puzzle.Puzzle
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
		logger.Warn("discarding corrupt cache entry", "key", key)
	} else if err != nil {
		logger.Warn("cache lookup failed", "key", key, "error", err)
	}

	p, err := generator.Generate(ctx, req.Words, req.Options)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := gencache.Set(ctx, key, data, ttl); err != nil {
			logger.Warn("caching puzzle failed", "key", key, "error", err)
		}
	}
	return p, nil
}

// requestKey derives the cache key for a generation request. The clue is
// part of the key because it is carried into the generated puzzle, and the
// options are normalized so the zero value and explicit defaults share an
// entry.
func requestKey(req GenerateRequest) string {
	words := make([]string, len(req.Words))
	for i, w := range req.Words {
		words[i] = w.Word + "\t" + w.Clue
	}
	opts := req.Options.WithDefaults()
	return cache.PuzzleKey(words, opts.MaxAttemptsPerWord, opts.MinIntersections, opts.GridPadding)
}

// statusForError maps generation and store failures to HTTP status codes.
// Generation failures are client errors: the word list cannot produce a
// puzzle, and retrying the same request cannot succeed.
func statusForError(err error) int {
	switch {
	case errors.Is(err, generator.ErrEmptyInput),
		errors.Is(err, generator.ErrNoValidWords),
		errors.Is(err, generator.ErrInsufficientPlacement):
		return http.StatusUnprocessableEntity
	case apperr.Is(err, apperr.CodePuzzleNotFound), apperr.Is(err, apperr.CodeNotFound):
		return http.StatusNotFound
	case apperr.Is(err, apperr.CodeInvalidInput), apperr.Is(err, apperr.CodeInvalidOptions):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(err error) apperr.Code {
	if code := apperr.GetCode(err); code != "" {
		return code
	}
	return apperr.CodeGeneration
}
