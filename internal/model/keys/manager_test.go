package keys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/model/customerr"
)

func Test_OnKeyFor_ShouldGenerateOnceAndReload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys")
	m := NewManager(dir)

	first, err := m.KeyFor(42)
	require.NoError(t, err)
	assert.Len(t, first, KeySize)

	second, err := NewManager(dir).KeyFor(42)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	info, err := os.Stat(filepath.Join(dir, "42.key"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}

func Test_OnKeyFor_ShouldGiveEveryUserOwnKey(t *testing.T) {
	m := NewManager(t.TempDir())

	a, err := m.KeyFor(1)
	require.NoError(t, err)
	b, err := m.KeyFor(2)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func Test_OnKeyFor_ShouldFailOnDamagedKeyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7.key"), []byte("c2hvcnQ="), 0o600))

	_, err := NewManager(dir).KeyFor(7)
	require.Error(t, err)
	assert.True(t, customerr.IsStorage(err))
}

func Test_OnKeyFor_ShouldFailWhenDirCannotBeCreated(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := NewManager(filepath.Join(file, "keys")).KeyFor(1)
	require.Error(t, err)
	assert.True(t, customerr.IsStorage(err))
}

func Test_OnExistingKey_ShouldNotCreateMissingKey(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys")
	m := NewManager(dir)

	_, err := m.ExistingKey(9)
	require.Error(t, err)
	assert.True(t, customerr.IsStorage(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = os.Stat(filepath.Join(dir, "9.key"))
	assert.True(t, os.IsNotExist(err))
}

func Test_OnExistingKey_ShouldReturnGeneratedKey(t *testing.T) {
	m := NewManager(t.TempDir())

	generated, err := m.KeyFor(3)
	require.NoError(t, err)
	existing, err := m.ExistingKey(3)
	require.NoError(t, err)

	assert.Equal(t, generated, existing)
}
