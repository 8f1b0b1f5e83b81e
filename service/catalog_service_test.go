package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navillera/models"
)

func writeCharms(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0644))
	}
	return dir
}

func TestListFilenamesSkipsNonImages(t *testing.T) {
	dir := writeCharms(t, "Gold_Plain_Charm.png", "notes.txt", "flag_uae.svg")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	svc := NewCatalogService(dir)
	files, err := svc.ListFilenames()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Gold_Plain_Charm.png", "flag_uae.svg"}, files)
}

func TestDeriveIsDeterministic(t *testing.T) {
	svc := NewCatalogService(t.TempDir())
	names := []string{"premium_starter_cat.png", "classic_gold_heart.png"}

	first := svc.Derive(names)
	second := svc.Derive(names)
	assert.Equal(t, first, second)

	require.Len(t, first, 2)
	assert.Equal(t, "catalog-premium_starter_cat.png", first[0].ID)
	assert.Equal(t, "/charms/premium_starter_cat.png", first[0].ImageURL)
	assert.Equal(t, models.CategoryPremium, first[0].Category)
	assert.Equal(t, int64(500), first[0].Price)
	assert.Equal(t, "premium starter cat", first[0].DisplayName)
	assert.False(t, first[0].SoldOut)
}

func TestCatalogCountsAndFiltering(t *testing.T) {
	dir := writeCharms(t,
		"classic_solid_star.png",
		"premium_iconic_moon.png",
		"deluxe_gold_crown.png",
		"flags_uae.png",
	)
	svc := NewCatalogService(dir)

	resp, err := svc.Catalog(models.CategoryPremium)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPremium, resp.Category)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "premium_iconic_moon.png", resp.Items[0].Filename)

	assert.Equal(t, 4, resp.Counts[models.CategoryAll])
	assert.Equal(t, 1, resp.Counts[models.CategoryClassic])
	assert.Equal(t, 1, resp.Counts[models.CategoryPremium])
	assert.Equal(t, 1, resp.Counts[models.CategoryDeluxe])
	assert.Equal(t, 1, resp.Counts[models.CategoryFlags])
}

func TestCatalogEmptyCategoryDefaultsToAll(t *testing.T) {
	dir := writeCharms(t, "classic_solid_star.png")
	svc := NewCatalogService(dir)

	resp, err := svc.Catalog("")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryAll, resp.Category)
	assert.Len(t, resp.Items, 1)
}

func TestSortForDisplayGoldFirstThenLetter(t *testing.T) {
	svc := NewCatalogService(t.TempDir())
	entries := svc.Derive([]string{
		"zebra_classic_solid.png",
		"Letters_Gold (2).png",
		"apple_classic_solid.png",
		"Letters_Silver (1).png",
	})

	sorted := SortForDisplay(entries)
	require.Len(t, sorted, 4)
	// Gold filename first, then the rest by derived letter. Both
	// apple and the (1)-indexed letter charm sort as A; the stable
	// sort keeps their input order.
	assert.Equal(t, "Letters_Gold (2).png", sorted[0].Filename)
	assert.Equal(t, "apple_classic_solid.png", sorted[1].Filename)
	assert.Equal(t, "Letters_Silver (1).png", sorted[2].Filename)
	assert.Equal(t, "zebra_classic_solid.png", sorted[3].Filename)
}

func TestSortForDisplayIsStable(t *testing.T) {
	svc := NewCatalogService(t.TempDir())
	entries := svc.Derive([]string{
		"apple_one.png",
		"apple_two.png",
		"apple_three.png",
	})

	sorted := SortForDisplay(entries)
	assert.Equal(t, "apple_one.png", sorted[0].Filename)
	assert.Equal(t, "apple_two.png", sorted[1].Filename)
	assert.Equal(t, "apple_three.png", sorted[2].Filename)
}

func TestEntryByIDAndFilename(t *testing.T) {
	dir := writeCharms(t, "classic_gold_heart.png")
	svc := NewCatalogService(dir)

	entry, ok := svc.EntryByID("catalog-classic_gold_heart.png")
	require.True(t, ok)
	assert.Equal(t, "classic_gold_heart.png", entry.Filename)

	_, ok = svc.EntryByID("catalog-missing.png")
	assert.False(t, ok)

	entry, ok = svc.EntryByFilename("classic_gold_heart.png")
	require.True(t, ok)
	assert.Equal(t, int64(300), entry.Price)
}

func TestDeriveMarksSoldOut(t *testing.T) {
	svc := NewCatalogService(t.TempDir())
	entries := svc.Derive([]string{"premium_charming_sold.png"})
	require.Len(t, entries, 1)
	assert.True(t, entries[0].SoldOut)
}
