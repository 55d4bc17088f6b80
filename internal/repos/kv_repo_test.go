package repos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalstore/internal/repos"
)

func memdb(t *testing.T) *repos.KVRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewKVRepo(db)
}

func TestKVRepo_GetSetDelete(t *testing.T) {
	kv := memdb(t)

	_, ok, err := kv.Get("products")
	require.NoError(t, err)
	assert.False(t, ok, "missing key must report ok=false")

	require.NoError(t, kv.Set("currency", []byte(`"$"`)))
	v, ok, err := kv.Get("currency")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"$"`, string(v))

	// overwrite keeps a single row
	require.NoError(t, kv.Set("currency", []byte(`"€"`)))
	v, _, _ = kv.Get("currency")
	assert.Equal(t, `"€"`, string(v))

	keys, err := kv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"currency"}, keys)

	require.NoError(t, kv.Delete("currency"))
	_, ok, err = kv.Get("currency")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting again is fine
	require.NoError(t, kv.Delete("currency"))
}

func TestKVRepo_SurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/store.db"
	db, err := repos.OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, repos.NewKVRepo(db).Set("hitProducts", []byte(`[1,3]`)))
	require.NoError(t, db.Close())

	db, err = repos.OpenDB(path)
	require.NoError(t, err)
	defer db.Close()
	v, ok, err := repos.NewKVRepo(db).Get("hitProducts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[1,3]`, string(v))
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	kv := repos.NewMemoryKV()
	buf := []byte(`[1]`)
	require.NoError(t, kv.Set("hitProducts", buf))
	buf[1] = '9'

	v, ok, err := kv.Get("hitProducts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1]`, string(v))

	require.NoError(t, kv.Set("ads", []byte(`[]`)))
	keys, _ := kv.Keys()
	assert.Equal(t, []string{"ads", "hitProducts"}, keys)
}
