package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gridwright/gridwright/pkg/apperr"
	"github.com/gridwright/gridwright/pkg/puzzle"
)

// StoredPuzzle is a generated puzzle with its server-assigned identity.
type StoredPuzzle struct {
	ID        string         `json:"id" bson:"_id"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
	Puzzle    *puzzle.Puzzle `json:"puzzle" bson:"puzzle"`
}

// Store persists generated puzzles for later retrieval.
type Store interface {
	Save(ctx context.Context, p *puzzle.Puzzle) (StoredPuzzle, error)
	Get(ctx context.Context, id string) (StoredPuzzle, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// MemoryStore keeps puzzles in a process-local map. It is the default
// store when no MongoDB URI is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	puzzles map[string]StoredPuzzle
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{puzzles: make(map[string]StoredPuzzle)}
}

func (s *MemoryStore) Save(_ context.Context, p *puzzle.Puzzle) (StoredPuzzle, error) {
	stored := StoredPuzzle{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Puzzle:    p,
	}

	s.mu.Lock()
	s.puzzles[stored.ID] = stored
	s.mu.Unlock()

	return stored, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (StoredPuzzle, error) {
	s.mu.RLock()
	stored, ok := s.puzzles[id]
	s.mu.RUnlock()

	if !ok {
		return StoredPuzzle{}, apperr.New(apperr.CodePuzzleNotFound, "puzzle not found: %s", id)
	}
	return stored, nil
}

func (s *MemoryStore) Ping(context.Context) error  { return nil }
func (s *MemoryStore) Close(context.Context) error { return nil }
