package pseudonym_test

import (
	"path/filepath"
	"testing"

	"github.com/anonydoc/anonydoc/pkg/pseudonym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.db")

	store, err := pseudonym.OpenBolt(path)
	require.NoError(t, err)

	reg := pseudonym.NewRegistry()
	reg.Generate("PERSON", "Jean")
	reg.Generate("PERSON", "Marie")
	reg.Generate("LOC", "Paris")

	require.NoError(t, store.Save(reg))
	require.NoError(t, store.Close())

	// Reopen and load into a fresh registry.
	store, err = pseudonym.OpenBolt(path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, reg.Table(), loaded.Table())
	assert.Equal(t, "Jean", loaded.Reverse("PERSON_1"))

	// Counters rebuilt from persisted pseudonyms.
	assert.Equal(t, "PERSON_3", loaded.Generate("PERSON", "Luc"))
}

func TestBoltStoreLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.db")

	store, err := pseudonym.OpenBolt(path)
	require.NoError(t, err)
	defer store.Close()

	reg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}
