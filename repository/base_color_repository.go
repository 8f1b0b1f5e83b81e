package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"navillera/models"
)

// BaseColorRepository persists base-color availability in a small JSON file
// next to the binary: color name -> available. A missing or unreadable file
// yields the all-available default, which is also written back so the admin
// toggle has a file to edit. Implements BaseColorRepositoryInterface.
type BaseColorRepository struct {
	mu   sync.Mutex
	path string
}

// NewBaseColorRepository creates a repository backed by the given file path.
func NewBaseColorRepository(path string) *BaseColorRepository {
	return &BaseColorRepository{path: path}
}

// Ensure BaseColorRepository implements BaseColorRepositoryInterface
var _ BaseColorRepositoryInterface = (*BaseColorRepository)(nil)

func defaultColors() map[models.BaseColor]bool {
	colors := make(map[models.BaseColor]bool, len(models.BaseColors()))
	for _, c := range models.BaseColors() {
		colors[c] = true
	}
	return colors
}

// Read returns the availability mapping, defaulting every color to
// available when the file is missing or unreadable.
func (r *BaseColorRepository) Read() (map[models.BaseColor]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readLocked()
}

func (r *BaseColorRepository) readLocked() (map[models.BaseColor]bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			colors := defaultColors()
			if writeErr := r.writeLocked(colors); writeErr != nil {
				log.Printf("warning: failed to seed base colors file: %v", writeErr)
			}
			return colors, nil
		}
		log.Printf("warning: failed to read base colors file: %v", err)
		return defaultColors(), nil
	}

	var colors map[models.BaseColor]bool
	if err := json.Unmarshal(data, &colors); err != nil {
		log.Printf("warning: invalid base colors file: %v", err)
		return defaultColors(), nil
	}

	// Colors added after the file was written default to available.
	for _, c := range models.BaseColors() {
		if _, ok := colors[c]; !ok {
			colors[c] = true
		}
	}
	return colors, nil
}

// SetSoldOut toggles one color's availability and persists the mapping.
// soldOut true means available false.
func (r *BaseColorRepository) SetSoldOut(color models.BaseColor, soldOut bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	colors, err := r.readLocked()
	if err != nil {
		return err
	}
	colors[color] = !soldOut
	return r.writeLocked(colors)
}

func (r *BaseColorRepository) writeLocked(colors map[models.BaseColor]bool) error {
	data, err := json.MarshalIndent(colors, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode base colors: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write base colors file: %w", err)
	}
	return nil
}
