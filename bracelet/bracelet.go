// Package bracelet implements the bracelet composition state machine: a
// fixed-length sequence of slots holding either a colored placeholder or a
// charm snapshot, mutated by resize, color-change, drag, and cart actions.
//
// Every slot carries an instance identity that is regenerated on each
// structural change (placement, swap, removal, placeholder refresh). Identity
// never aliases across operations; two slots never compare equal by ID. This
// keeps interaction-layer element tracking stable and collision-free.
package bracelet

import (
	"fmt"

	"github.com/google/uuid"

	"navillera/models"
	"navillera/utils"
)

// CatalogLookup resolves a catalog entry ID to its entry during a drag that
// originates in the catalog.
type CatalogLookup func(id string) (models.CatalogEntry, bool)

// Bracelet is one builder session's bracelet. Not safe for concurrent use;
// callers serialize access per session.
type Bracelet struct {
	color models.BaseColor
	slots []models.Slot
}

// New creates an all-placeholder bracelet of the given size and band color.
func New(size int, color models.BaseColor) (*Bracelet, error) {
	if !models.ValidBraceletSize(size) {
		return nil, fmt.Errorf("invalid bracelet size %d", size)
	}
	if !color.Valid() {
		return nil, fmt.Errorf("invalid base color %q", color)
	}
	b := &Bracelet{color: color}
	b.slots = make([]models.Slot, size)
	for i := range b.slots {
		b.slots[i] = b.newPlaceholder()
	}
	return b, nil
}

func (b *Bracelet) newPlaceholder() models.Slot {
	filename := b.color.PlaceholderFilename()
	return models.Slot{
		ID:          uuid.NewString(),
		Placeholder: true,
		Entry: models.CatalogEntry{
			ID:          "placeholder-" + string(b.color),
			Filename:    filename,
			ImageURL:    "/charms/" + filename,
			Category:    models.CategoryClassic,
			DisplayName: utils.DisplayName(filename),
		},
	}
}

// Size returns the current slot count.
func (b *Bracelet) Size() int { return len(b.slots) }

// Color returns the current band color.
func (b *Bracelet) Color() models.BaseColor { return b.color }

// Slots returns a copy of the slot sequence.
func (b *Bracelet) Slots() []models.Slot {
	out := make([]models.Slot, len(b.slots))
	copy(out, b.slots)
	return out
}

// Filled returns the number of slots holding a real charm.
func (b *Bracelet) Filled() int {
	n := 0
	for _, s := range b.slots {
		if !s.Placeholder {
			n++
		}
	}
	return n
}

// Resize changes the slot count. Growing appends placeholders of the current
// color; shrinking truncates from the end. Contents left of the new boundary
// keep their identity. Resizing to the current size is a no-op.
func (b *Bracelet) Resize(size int) error {
	if !models.ValidBraceletSize(size) {
		return fmt.Errorf("invalid bracelet size %d", size)
	}
	switch {
	case size > len(b.slots):
		for len(b.slots) < size {
			b.slots = append(b.slots, b.newPlaceholder())
		}
	case size < len(b.slots):
		b.slots = b.slots[:size]
	}
	return nil
}

// SetColor changes the band color. Every placeholder slot is replaced with a
// freshly-identified placeholder of the new color; charm slots are untouched.
func (b *Bracelet) SetColor(color models.BaseColor) error {
	if !color.Valid() {
		return fmt.Errorf("invalid base color %q", color)
	}
	b.color = color
	for i, s := range b.slots {
		if s.Placeholder {
			b.slots[i] = b.newPlaceholder()
		}
	}
	return nil
}

// DragEnd interprets the end of a drag interaction. sourceID is either a
// slot instance ID or a catalog entry ID (resolved through lookup). target
// is the slot index the drag ended over, or a negative/out-of-range value
// when it ended outside every slot.
//
// Dragging a charm slot off the bracelet removes it. Dragging a catalog
// entry onto a slot overwrites it with a fresh-identity copy, unless the
// entry's filename signals a sold-out state, in which case the drag is
// rejected silently. Dragging a slot onto a different slot exchanges the two
// contents under fresh identities. Everything else is a no-op.
func (b *Bracelet) DragEnd(sourceID string, target int, lookup CatalogLookup) {
	from := b.indexOf(sourceID)

	if target < 0 || target >= len(b.slots) {
		if from >= 0 && !b.slots[from].Placeholder {
			b.slots[from] = b.newPlaceholder()
		}
		return
	}

	if from < 0 {
		if lookup == nil {
			return
		}
		entry, ok := lookup(sourceID)
		if !ok || utils.IsSoldOut(entry.Filename) {
			return
		}
		b.slots[target] = models.Slot{ID: uuid.NewString(), Entry: entry}
		return
	}

	if from == target {
		return
	}

	b.slots[from], b.slots[target] = b.slots[target], b.slots[from]
	b.slots[from].ID = uuid.NewString()
	b.slots[target].ID = uuid.NewString()
}

func (b *Bracelet) indexOf(slotID string) int {
	for i, s := range b.slots {
		if s.ID == slotID {
			return i
		}
	}
	return -1
}

// Subtotal sums the prices of all charm slots. Placeholders never count.
func (b *Bracelet) Subtotal() int64 {
	var sum int64
	for _, s := range b.slots {
		if !s.Placeholder {
			sum += s.Entry.Price
		}
	}
	return sum
}

// Lines groups charm slots by filename in first-appearance order.
func (b *Bracelet) Lines() []models.CartLine {
	var lines []models.CartLine
	index := make(map[string]int)
	for _, s := range b.slots {
		if s.Placeholder {
			continue
		}
		if i, ok := index[s.Entry.Filename]; ok {
			lines[i].Count++
			lines[i].LineTotal += s.Entry.Price
			continue
		}
		index[s.Entry.Filename] = len(lines)
		lines = append(lines, models.CartLine{
			Entry:     s.Entry,
			Count:     1,
			LineTotal: s.Entry.Price,
		})
	}
	return lines
}

// Increment fills the first placeholder slot with a fresh-identity copy of
// the group's entry. Reports false when no slot holds that filename or the
// bracelet is full.
func (b *Bracelet) Increment(filename string) bool {
	var entry models.CatalogEntry
	found := false
	for _, s := range b.slots {
		if !s.Placeholder && s.Entry.Filename == filename {
			entry = s.Entry
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for i, s := range b.slots {
		if s.Placeholder {
			b.slots[i] = models.Slot{ID: uuid.NewString(), Entry: entry}
			return true
		}
	}
	return false
}

// Decrement reverts the first slot holding the filename to a placeholder.
func (b *Bracelet) Decrement(filename string) bool {
	for i, s := range b.slots {
		if !s.Placeholder && s.Entry.Filename == filename {
			b.slots[i] = b.newPlaceholder()
			return true
		}
	}
	return false
}

// RemoveAll reverts every slot holding the filename to a placeholder and
// returns how many were removed.
func (b *Bracelet) RemoveAll(filename string) int {
	n := 0
	for i, s := range b.slots {
		if !s.Placeholder && s.Entry.Filename == filename {
			b.slots[i] = b.newPlaceholder()
			n++
		}
	}
	return n
}

// Reset reverts every slot to a fresh placeholder of the current color.
func (b *Bracelet) Reset() {
	for i := range b.slots {
		b.slots[i] = b.newPlaceholder()
	}
}

// State serializes the bracelet for a session response.
func (b *Bracelet) State(sessionID string) models.BuilderState {
	return models.BuilderState{
		SessionID: sessionID,
		Size:      len(b.slots),
		BaseColor: b.color,
		Slots:     b.Slots(),
		Filled:    b.Filled(),
		Subtotal:  b.Subtotal(),
	}
}
