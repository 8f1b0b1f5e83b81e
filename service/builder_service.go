package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"navillera/bracelet"
	"navillera/models"
	"navillera/repository"
)

// BuilderService holds the live builder sessions. Each session owns one
// bracelet; mutations run under the store lock so a session only ever has a
// single writer, matching the one-user-per-page interaction model.
type BuilderService struct {
	mu       sync.Mutex
	sessions map[string]*bracelet.Bracelet
	colors   repository.BaseColorRepositoryInterface
}

// NewBuilderService creates an empty session store.
func NewBuilderService(colors repository.BaseColorRepositoryInterface) *BuilderService {
	return &BuilderService{
		sessions: make(map[string]*bracelet.Bracelet),
		colors:   colors,
	}
}

// colorAvailable checks the availability toggle for a color. A failed read
// defaults every color to available.
func (s *BuilderService) colorAvailable(color models.BaseColor) bool {
	colors, err := s.colors.Read()
	if err != nil {
		return true
	}
	available, ok := colors[color]
	return !ok || available
}

// Create starts a new session. Size defaults to 20 and color to Silver when
// unset. Unavailable colors are rejected.
func (s *BuilderService) Create(size int, color models.BaseColor) (models.BuilderState, error) {
	if size == 0 {
		size = 20
	}
	if color == "" {
		color = models.ColorSilver
	}
	if !color.Valid() {
		return models.BuilderState{}, fmt.Errorf("%w: invalid base color %q", ErrValidation, color)
	}
	if !s.colorAvailable(color) {
		return models.BuilderState{}, fmt.Errorf("%w: base color %s is sold out", ErrValidation, color)
	}

	b, err := bracelet.New(size, color)
	if err != nil {
		return models.BuilderState{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = b
	s.mu.Unlock()

	log.Printf("🎨 Builder session created: %s (size=%d, color=%s)", id, size, color)
	return b.State(id), nil
}

// With runs fn against the session's bracelet under the store lock.
// Returns ErrNotFound for an unknown session.
func (s *BuilderService) With(sessionID string, fn func(b *bracelet.Bracelet) error) (models.BuilderState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.sessions[sessionID]
	if !ok {
		return models.BuilderState{}, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	if err := fn(b); err != nil {
		return models.BuilderState{}, err
	}
	return b.State(sessionID), nil
}

// State returns the current serialized state of a session.
func (s *BuilderService) State(sessionID string) (models.BuilderState, error) {
	return s.With(sessionID, func(*bracelet.Bracelet) error { return nil })
}

// SetColor validates availability before delegating to the bracelet.
func (s *BuilderService) SetColor(sessionID string, color models.BaseColor) (models.BuilderState, error) {
	if !color.Valid() {
		return models.BuilderState{}, fmt.Errorf("%w: invalid base color %q", ErrValidation, color)
	}
	if !s.colorAvailable(color) {
		return models.BuilderState{}, fmt.Errorf("%w: base color %s is sold out", ErrValidation, color)
	}
	return s.With(sessionID, func(b *bracelet.Bracelet) error {
		return b.SetColor(color)
	})
}

// Drop removes a session from the store.
func (s *BuilderService) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
