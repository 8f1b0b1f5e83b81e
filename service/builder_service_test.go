package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navillera/bracelet"
	"navillera/models"
)

type colorRepoMock struct {
	colors map[models.BaseColor]bool
	err    error
}

func (m *colorRepoMock) Read() (map[models.BaseColor]bool, error) {
	return m.colors, m.err
}

func (m *colorRepoMock) SetSoldOut(models.BaseColor, bool) error { return nil }

func allAvailable() *colorRepoMock {
	colors := make(map[models.BaseColor]bool)
	for _, c := range models.BaseColors() {
		colors[c] = true
	}
	return &colorRepoMock{colors: colors}
}

func TestCreateDefaults(t *testing.T) {
	svc := NewBuilderService(allAvailable())

	state, err := svc.Create(0, "")
	require.NoError(t, err)
	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, 20, state.Size)
	assert.Equal(t, models.ColorSilver, state.BaseColor)
	assert.Len(t, state.Slots, 20)
	assert.Equal(t, 0, state.Filled)
}

func TestCreateRejectsInvalidInputs(t *testing.T) {
	svc := NewBuilderService(allAvailable())

	_, err := svc.Create(17, models.ColorGold)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(16, "Chartreuse")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsSoldOutColor(t *testing.T) {
	repo := allAvailable()
	repo.colors[models.ColorGold] = false
	svc := NewBuilderService(repo)

	_, err := svc.Create(16, models.ColorGold)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateDefaultsToAvailableOnRepoFailure(t *testing.T) {
	svc := NewBuilderService(&colorRepoMock{err: errors.New("disk gone")})

	state, err := svc.Create(16, models.ColorGold)
	require.NoError(t, err)
	assert.Equal(t, models.ColorGold, state.BaseColor)
}

func TestWithUnknownSession(t *testing.T) {
	svc := NewBuilderService(allAvailable())

	_, err := svc.State("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWithMutatesSession(t *testing.T) {
	svc := NewBuilderService(allAvailable())
	created, err := svc.Create(16, models.ColorSilver)
	require.NoError(t, err)

	state, err := svc.With(created.SessionID, func(b *bracelet.Bracelet) error {
		return b.Resize(22)
	})
	require.NoError(t, err)
	assert.Equal(t, 22, state.Size)

	state, err = svc.State(created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 22, state.Size)
}

func TestSetColorRejectsSoldOut(t *testing.T) {
	repo := allAvailable()
	svc := NewBuilderService(repo)
	created, err := svc.Create(16, models.ColorSilver)
	require.NoError(t, err)

	repo.colors[models.ColorPink] = false
	_, err = svc.SetColor(created.SessionID, models.ColorPink)
	assert.ErrorIs(t, err, ErrValidation)

	state, err := svc.SetColor(created.SessionID, models.ColorBlue)
	require.NoError(t, err)
	assert.Equal(t, models.ColorBlue, state.BaseColor)
}

func TestDrop(t *testing.T) {
	svc := NewBuilderService(allAvailable())
	created, err := svc.Create(16, models.ColorSilver)
	require.NoError(t, err)

	svc.Drop(created.SessionID)
	_, err = svc.State(created.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}
