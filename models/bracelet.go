package models

// BaseColor is the bracelet band color. Each color maps to exactly one
// placeholder charm image.
type BaseColor string

const (
	ColorSilver BaseColor = "Silver"
	ColorGold   BaseColor = "Gold"
	ColorBlue   BaseColor = "Blue"
	ColorBlack  BaseColor = "Black"
	ColorBrown  BaseColor = "Brown"
	ColorRed    BaseColor = "Red"
	ColorPurple BaseColor = "Purple"
	ColorPink   BaseColor = "Pink"
)

// BaseColors returns the selectable base colors in display order.
func BaseColors() []BaseColor {
	return []BaseColor{
		ColorSilver, ColorGold, ColorBlue, ColorBlack,
		ColorBrown, ColorRed, ColorPurple, ColorPink,
	}
}

// Valid reports whether c is one of the enumerated base colors.
func (c BaseColor) Valid() bool {
	for _, known := range BaseColors() {
		if c == known {
			return true
		}
	}
	return false
}

// PlaceholderFilename returns the placeholder charm image for this color.
func (c BaseColor) PlaceholderFilename() string {
	return string(c) + "_Plain_Charm.png"
}

// BraceletSizes are the selectable slot counts.
var BraceletSizes = []int{16, 18, 20, 22}

// ValidBraceletSize reports whether n is an enumerated bracelet size.
func ValidBraceletSize(n int) bool {
	for _, s := range BraceletSizes {
		if n == s {
			return true
		}
	}
	return false
}

// Slot is one fixed position in the bracelet sequence: either a placeholder
// (colored empty-slot stand-in) or a charm snapshot. ID is the instance
// identity, freshly generated on every placement, swap, or placeholder
// refresh; it is unique across the whole bracelet at any instant.
type Slot struct {
	ID          string       `json:"id"`
	Placeholder bool         `json:"placeholder"`
	Entry       CatalogEntry `json:"entry"`
}

// BuilderState is the serialized view of one builder session.
type BuilderState struct {
	SessionID string    `json:"sessionId"`
	Size      int       `json:"size"`
	BaseColor BaseColor `json:"baseColor"`
	Slots     []Slot    `json:"slots"`
	Filled    int       `json:"filled"`
	Subtotal  int64     `json:"subtotal"`
}
