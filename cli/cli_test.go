package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotIndexes(t *testing.T) {
	all, err := slotIndexes(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, all)

	one, err := slotIndexes(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, one)

	_, err = slotIndexes(4)
	assert.Error(t, err)
	_, err = slotIndexes(-1)
	assert.Error(t, err)
}

func TestSingleSlot(t *testing.T) {
	i, err := singleSlot(1)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = singleSlot(0)
	assert.Error(t, err)
	_, err = singleSlot(4)
	assert.Error(t, err)
}

func TestCheckExistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "save.sav")
	assert.False(t, CheckExistence(path))

	require.NoError(t, os.WriteFile(path, []byte{1}, 0o644))
	assert.True(t, CheckExistence(path))
}

func TestConfirmOverwrite(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "new.png")
	assert.True(t, confirmOverwrite(missing, false))

	existing := filepath.Join(dir, "old.png")
	require.NoError(t, os.WriteFile(existing, []byte{1}, 0o644))
	assert.False(t, confirmOverwrite(existing, false))
	assert.True(t, confirmOverwrite(existing, true))
}
