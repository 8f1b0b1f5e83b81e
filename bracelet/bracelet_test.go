package bracelet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navillera/models"
	"navillera/pricing"
)

func entry(filename string) models.CatalogEntry {
	return models.CatalogEntry{
		ID:       "catalog-" + filename,
		Filename: filename,
		Category: pricing.CategoryFor(filename),
		Price:    pricing.Price(filename),
	}
}

func lookupFor(entries ...models.CatalogEntry) CatalogLookup {
	byID := make(map[string]models.CatalogEntry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	return func(id string) (models.CatalogEntry, bool) {
		e, ok := byID[id]
		return e, ok
	}
}

// place drops a catalog entry onto a slot via the drag path.
func place(t *testing.T, b *Bracelet, e models.CatalogEntry, slot int) {
	t.Helper()
	b.DragEnd(e.ID, slot, lookupFor(e))
	require.False(t, b.Slots()[slot].Placeholder, "placement of %s onto slot %d", e.Filename, slot)
}

func TestNew(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	assert.Equal(t, 16, b.Size())
	assert.Equal(t, 0, b.Filled())
	for _, s := range b.Slots() {
		assert.True(t, s.Placeholder)
		assert.Equal(t, "Silver_Plain_Charm.png", s.Entry.Filename)
	}

	_, err = New(17, models.ColorSilver)
	assert.Error(t, err)
	_, err = New(16, models.BaseColor("Teal"))
	assert.Error(t, err)
}

func TestResize(t *testing.T) {
	for _, size := range models.BraceletSizes {
		b, err := New(16, models.ColorGold)
		require.NoError(t, err)
		require.NoError(t, b.Resize(size))
		assert.Equal(t, size, b.Size(), "len(bracelet) == size after Resize(%d)", size)
	}
}

func TestResizeCurrentSizeIsNoop(t *testing.T) {
	b, err := New(18, models.ColorSilver)
	require.NoError(t, err)
	before := b.Slots()
	require.NoError(t, b.Resize(18))
	assert.Equal(t, before, b.Slots())
}

func TestResizePreservesFrontContents(t *testing.T) {
	b, err := New(20, models.ColorSilver)
	require.NoError(t, err)
	e := entry("Premium_Iconic_Tower.png")
	place(t, b, e, 3)
	keptID := b.Slots()[3].ID

	require.NoError(t, b.Resize(16))
	assert.Equal(t, 16, b.Size())
	assert.Equal(t, e.Filename, b.Slots()[3].Entry.Filename)
	assert.Equal(t, keptID, b.Slots()[3].ID, "surviving slot keeps its identity")

	require.NoError(t, b.Resize(22))
	assert.Equal(t, 22, b.Size())
	assert.Equal(t, e.Filename, b.Slots()[3].Entry.Filename)
	for _, s := range b.Slots()[16:] {
		assert.True(t, s.Placeholder)
	}
}

func TestResizeInvalidSize(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	assert.Error(t, b.Resize(17))
	assert.Equal(t, 16, b.Size())
}

func TestSetColorRefreshesPlaceholdersOnly(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e := entry("Deluxe_Gold_Charm.png")
	place(t, b, e, 0)
	charmID := b.Slots()[0].ID
	oldPlaceholderID := b.Slots()[1].ID

	require.NoError(t, b.SetColor(models.ColorPink))
	assert.Equal(t, 16, b.Size(), "len(bracelet) == size after ColorChange")
	slots := b.Slots()
	assert.Equal(t, charmID, slots[0].ID, "charm slots untouched")
	assert.Equal(t, e.Filename, slots[0].Entry.Filename)
	assert.NotEqual(t, oldPlaceholderID, slots[1].ID, "placeholders get fresh identities")
	for _, s := range slots[1:] {
		assert.True(t, s.Placeholder)
		assert.Equal(t, "Pink_Plain_Charm.png", s.Entry.Filename)
	}
}

func TestDragFromCatalogOntoSlot(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e := entry("Classic_Concave_Charm.png")
	b.DragEnd(e.ID, 5, lookupFor(e))

	s := b.Slots()[5]
	assert.False(t, s.Placeholder)
	assert.Equal(t, e.Filename, s.Entry.Filename)
	assert.NotEqual(t, e.ID, s.ID, "slot gets a fresh instance identity")
	assert.Equal(t, 1, b.Filled())
}

func TestDragSoldOutIsSilentlyRejected(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e := entry("Premium_Cat_SoldOut.png")
	before := b.Slots()

	for i := range before {
		b.DragEnd(e.ID, i, lookupFor(e))
	}
	assert.Equal(t, before, b.Slots(), "sold-out drags leave every slot unchanged")
}

func TestDragUnknownSourceIsNoop(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	before := b.Slots()
	b.DragEnd("catalog-ghost.png", 2, lookupFor())
	b.DragEnd("catalog-ghost.png", 2, nil)
	assert.Equal(t, before, b.Slots())
}

func TestDragOffBraceletRemovesCharm(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e := entry("Premium_Charming_Cat.png")
	place(t, b, e, 4)
	slotID := b.Slots()[4].ID

	b.DragEnd(slotID, -1, nil)
	s := b.Slots()[4]
	assert.True(t, s.Placeholder)
	assert.NotEqual(t, slotID, s.ID)
	assert.Equal(t, 0, b.Filled())
}

func TestDragCatalogOffTargetIsNoop(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	before := b.Slots()
	e := entry("Classic_Solid_Sun.png")
	b.DragEnd(e.ID, -1, lookupFor(e))
	assert.Equal(t, before, b.Slots())
}

func TestDragPlaceholderOffBraceletIsNoop(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	before := b.Slots()
	b.DragEnd(before[2].ID, -1, nil)
	assert.Equal(t, before, b.Slots())
}

func TestSwap(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e1 := entry("Classic_Gold_Star.png")
	e2 := entry("Premium_Iconic_Tower.png")
	place(t, b, e1, 1)
	place(t, b, e2, 7)

	id1, id7 := b.Slots()[1].ID, b.Slots()[7].ID
	b.DragEnd(id1, 7, nil)

	slots := b.Slots()
	assert.Equal(t, e2.Filename, slots[1].Entry.Filename)
	assert.Equal(t, e1.Filename, slots[7].Entry.Filename)
	assert.NotEqual(t, id1, slots[1].ID)
	assert.NotEqual(t, id7, slots[1].ID)
	assert.NotEqual(t, id1, slots[7].ID)
	assert.NotEqual(t, id7, slots[7].ID)
}

// Swap(i,j) twice restores the original filenames at i and j; identities
// differ, content is equal.
func TestDoubleSwapRestoresContent(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e1 := entry("Classic_Gold_Star.png")
	e2 := entry("Flag_UAE.png")
	place(t, b, e1, 2)
	place(t, b, e2, 9)
	origIDs := []string{b.Slots()[2].ID, b.Slots()[9].ID}

	b.DragEnd(b.Slots()[2].ID, 9, nil)
	b.DragEnd(b.Slots()[2].ID, 9, nil)

	slots := b.Slots()
	assert.Equal(t, e1.Filename, slots[2].Entry.Filename)
	assert.Equal(t, e2.Filename, slots[9].Entry.Filename)
	assert.NotEqual(t, origIDs[0], slots[2].ID)
	assert.NotEqual(t, origIDs[1], slots[9].ID)
}

func TestSwapWithSelfIsNoop(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	place(t, b, entry("Classic_Gold_Star.png"), 3)
	before := b.Slots()
	b.DragEnd(before[3].ID, 3, nil)
	assert.Equal(t, before, b.Slots())
}

// Every mutation must leave all slot identities unique across the sequence.
func TestIdentityUniquenessInvariant(t *testing.T) {
	b, err := New(22, models.ColorSilver)
	require.NoError(t, err)
	e1 := entry("Classic_Gold_Star.png")
	e2 := entry("Premium_Charming_Cat.png")
	lookup := lookupFor(e1, e2)

	assertUnique := func() {
		t.Helper()
		seen := make(map[string]bool)
		for _, s := range b.Slots() {
			assert.False(t, seen[s.ID], "duplicate slot identity %s", s.ID)
			seen[s.ID] = true
		}
	}

	assertUnique()
	b.DragEnd(e1.ID, 0, lookup)
	b.DragEnd(e2.ID, 1, lookup)
	assertUnique()
	b.DragEnd(b.Slots()[0].ID, 1, nil)
	assertUnique()
	require.NoError(t, b.SetColor(models.ColorBlue))
	assertUnique()
	require.NoError(t, b.Resize(16))
	require.NoError(t, b.Resize(22))
	assertUnique()
	b.Increment(e1.Filename)
	b.Decrement(e2.Filename)
	assertUnique()
	b.Reset()
	assertUnique()
}

func TestLinesGroupByFilename(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e1 := entry("Classic_Gold_Star.png")    // 300
	e2 := entry("Premium_Charming_Cat.png") // 700
	place(t, b, e1, 0)
	place(t, b, e1, 5)
	place(t, b, e2, 2)

	lines := b.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, e1.Filename, lines[0].Entry.Filename)
	assert.Equal(t, 2, lines[0].Count)
	assert.Equal(t, int64(600), lines[0].LineTotal)
	assert.Equal(t, e2.Filename, lines[1].Entry.Filename)
	assert.Equal(t, 1, lines[1].Count)
	assert.Equal(t, int64(700), lines[1].LineTotal)
}

func TestIncrementDecrementRemoveAll(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e := entry("Classic_Outline_Heart.png")
	place(t, b, e, 0)

	assert.True(t, b.Increment(e.Filename))
	assert.Equal(t, 2, b.Filled())

	assert.True(t, b.Decrement(e.Filename))
	assert.Equal(t, 1, b.Filled())

	assert.False(t, b.Increment("missing.png"), "increment of an absent group is a no-op")
	assert.False(t, b.Decrement("missing.png"))

	b.Increment(e.Filename)
	b.Increment(e.Filename)
	assert.Equal(t, 3, b.RemoveAll(e.Filename))
	assert.Equal(t, 0, b.Filled())
}

func TestIncrementWhenFullIsNoop(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	e := entry("Classic_Gold_Star.png")
	for i := 0; i < 16; i++ {
		place(t, b, e, i)
	}
	assert.False(t, b.Increment(e.Filename))
	assert.Equal(t, 16, b.Filled())
}

func TestSubtotalExcludesPlaceholders(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.Subtotal(), "all-placeholder bracelet prices at 0")

	place(t, b, entry("Gold_Plain_Charm.png"), 0) // 150
	place(t, b, entry("Flag_UAE.png"), 1)         // 800
	assert.Equal(t, int64(950), b.Subtotal())
}

// End-to-end scenario from the storefront: size-16 bracelet, three distinct
// charms at 1.50/3.00/7.00 AED, meetup at Union Metro.
func TestEndToEndQuote(t *testing.T) {
	b, err := New(16, models.ColorSilver)
	require.NoError(t, err)
	place(t, b, entry("Gold_Plain_Charm.png"), 0)       // 1.50
	place(t, b, entry("Classic_Gold_Star.png"), 1)      // 3.00
	place(t, b, entry("Premium_Charming_Cat.png"), 2)   // 7.00

	subtotal := b.Subtotal()
	fee := pricing.DeliveryFee("Union Metro")
	assert.Equal(t, int64(1150), subtotal)
	assert.Equal(t, int64(1000), fee)
	assert.Equal(t, int64(2150), subtotal+fee)
}

func TestReset(t *testing.T) {
	b, err := New(16, models.ColorBlue)
	require.NoError(t, err)
	place(t, b, entry("Deluxe_Baby_Bear.png"), 0)
	b.Reset()
	assert.Equal(t, 0, b.Filled())
	for _, s := range b.Slots() {
		assert.True(t, s.Placeholder)
		assert.Equal(t, "Blue_Plain_Charm.png", s.Entry.Filename)
	}
}
