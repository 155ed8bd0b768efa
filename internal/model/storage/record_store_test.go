package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/model/customerr"
	"max.ks1230/expense-bot/internal/model/keys"
)

func newFileStore(t *testing.T) (*RecordStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewRecordStore(NewFileBlobs(dir), keys.NewManager(filepath.Join(dir, "keys"))), dir
}

func sampleRecord() user.Record {
	rec := user.NewRecord()
	rec.SetPin("0420")
	rec.SetEmail("me@example.com")
	rec.Currency = "EUR"
	rec.Budget = 2000
	rec.SetLimit("Food", 500)
	rec.Expenses = append(rec.Expenses,
		user.ExpenseRecord{
			Amount:      50,
			Category:    "food",
			Created:     time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC),
			Description: "Spent 50 on food",
		},
		user.ExpenseRecord{
			Amount:   12.5,
			Category: "lunch",
			Created:  time.Date(2026, 10, 2, 13, 0, 0, 0, time.UTC),
		},
	)
	rec.Recurring = append(rec.Recurring, user.ExpenseRecord{Amount: 100, Category: "netflix"})
	return rec
}

func Test_OnSaveThenLoad_ShouldRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)
	rec := sampleRecord()

	require.NoError(t, store.Save(ctx, 1, rec))
	loaded, ok := store.Load(ctx, 1)

	require.True(t, ok)
	assert.Equal(t, rec, loaded)
}

func Test_OnSaveTwice_ShouldChangeCiphertextButNotContent(t *testing.T) {
	ctx := context.Background()
	blobs := NewInMemStorage()
	store := NewRecordStore(blobs, keys.NewManager(t.TempDir()))
	rec := sampleRecord()

	require.NoError(t, store.Save(ctx, 1, rec))
	first, err := blobs.Read(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, 1, rec))
	second, err := blobs.Read(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	loaded, ok := store.Load(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, rec, loaded)
}

func Test_OnSave_ShouldNeverWritePlaintext(t *testing.T) {
	ctx := context.Background()
	store, dir := newFileStore(t)

	require.NoError(t, store.Save(ctx, 5, sampleRecord()))

	raw, err := os.ReadFile(filepath.Join(dir, "5.blob"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "me@example.com")
	assert.NotContains(t, string(raw), "expenses")
}

func Test_OnLoad_ShouldTreatMissingAsAbsent(t *testing.T) {
	store, dir := newFileStore(t)

	_, ok := store.Load(context.Background(), 99)

	assert.False(t, ok)
	_, err := os.Stat(filepath.Join(dir, "keys", "99.key"))
	assert.True(t, os.IsNotExist(err), "loading must not create a key for unknown users")
}

func Test_OnLoad_ShouldTreatCorruptBlobsAsAbsent(t *testing.T) {
	ctx := context.Background()

	cases := map[string]func(blob []byte) []byte{
		"empty":     func([]byte) []byte { return []byte{} },
		"truncated": func(b []byte) []byte { return b[:len(b)/2] },
		"tiny":      func(b []byte) []byte { return b[:3] },
		"bit flip": func(b []byte) []byte {
			c := append([]byte(nil), b...)
			c[len(c)-1] ^= 0x01
			return c
		},
		"nonce flip": func(b []byte) []byte {
			c := append([]byte(nil), b...)
			c[0] ^= 0x80
			return c
		},
	}

	for name, damage := range cases {
		t.Run(name, func(t *testing.T) {
			store, dir := newFileStore(t)
			require.NoError(t, store.Save(ctx, 1, sampleRecord()))

			path := filepath.Join(dir, "1.blob")
			blob, err := os.ReadFile(path)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(path, damage(blob), 0o600))

			assert.NotPanics(t, func() {
				_, ok := store.Load(ctx, 1)
				assert.False(t, ok)
			})
		})
	}
}

func Test_OnLoad_ShouldRejectBlobOfAnotherUser(t *testing.T) {
	ctx := context.Background()
	blobs := NewInMemStorage()
	store := NewRecordStore(blobs, keys.NewManager(t.TempDir()))

	require.NoError(t, store.Save(ctx, 1, sampleRecord()))
	blob, err := blobs.Read(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, blobs.Write(ctx, 2, blob))

	_, ok := store.Load(ctx, 2)
	assert.False(t, ok)
}

func Test_OnLoad_ShouldTreatGarbagePlaintextAsAbsent(t *testing.T) {
	ctx := context.Background()
	blobs := NewInMemStorage()
	km := keys.NewManager(t.TempDir())
	store := NewRecordStore(blobs, km)

	key, err := km.KeyFor(3)
	require.NoError(t, err)
	blob, err := seal(key, 3, []byte("not json"))
	require.NoError(t, err)
	require.NoError(t, blobs.Write(ctx, 3, blob))

	_, ok := store.Load(ctx, 3)
	assert.False(t, ok)
}

func Test_OnSetPin_ShouldVerifyOnlyExactPinForThatUser(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)

	assert.False(t, store.VerifyPin(ctx, 1, "1234"))

	require.NoError(t, store.SetPin(ctx, 1, "1234"))

	assert.True(t, store.VerifyPin(ctx, 1, "1234"))
	assert.False(t, store.VerifyPin(ctx, 1, "4321"))
	assert.False(t, store.VerifyPin(ctx, 1, "01234"))
	assert.False(t, store.VerifyPin(ctx, 2, "1234"))
}

func Test_OnSetPin_ShouldRejectMalformedPins(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)

	for _, pin := range []string{"", "123", "12345", "12a4", "١٢٣٤", " 123"} {
		err := store.SetPin(ctx, 1, pin)
		require.Error(t, err, pin)
		assert.True(t, customerr.IsUserInput(err), pin)
	}

	_, ok := store.Load(ctx, 1)
	assert.False(t, ok, "rejected pins must not create a record")
}

func Test_OnUpdate_ShouldNotSaveWhenCallbackFails(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)
	require.NoError(t, store.Save(ctx, 1, sampleRecord()))

	_, err := store.Update(ctx, 1, func(rec *user.Record) error {
		rec.Budget = 1
		return errors.New("nope")
	})
	require.Error(t, err)

	loaded, ok := store.Load(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, 2000.0, loaded.Budget)
}

func Test_OnConcurrentUpdates_ShouldNotLoseWrites(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(NewInMemStorage(), keys.NewManager(t.TempDir()))

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, 1, func(rec *user.Record) error {
				rec.Expenses = append(rec.Expenses, user.ExpenseRecord{Amount: 1, Category: "misc"})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	loaded, ok := store.Load(ctx, 1)
	require.True(t, ok)
	assert.Len(t, loaded.Expenses, writers)
}

func Test_OnUsers_ShouldListStoredRecordsOnly(t *testing.T) {
	ctx := context.Background()
	store, dir := newFileStore(t)

	require.NoError(t, store.Save(ctx, 20, sampleRecord()))
	require.NoError(t, store.Save(ctx, 3, sampleRecord()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "encrypted_data.blob"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	ids, err := store.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 20}, ids)
}

func Test_OnUsers_ShouldBeEmptyBeforeFirstSave(t *testing.T) {
	store := NewRecordStore(NewFileBlobs(filepath.Join(t.TempDir(), "missing")), keys.NewManager(t.TempDir()))

	ids, err := store.Users(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func Test_OnFileWrite_ShouldLeaveNoTempFiles(t *testing.T) {
	ctx := context.Background()
	store, dir := newFileStore(t)

	require.NoError(t, store.Save(ctx, 1, sampleRecord()))
	require.NoError(t, store.Save(ctx, 1, sampleRecord()))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	hidden, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, append(matches, hidden...))
}

func Test_OnLoad_WithoutKey_ShouldNotCreateOne(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writer := NewRecordStore(NewFileBlobs(dir), keys.NewManager(filepath.Join(dir, "keys")))
	require.NoError(t, writer.Save(ctx, 5, sampleRecord()))

	readerKeys := filepath.Join(dir, "other-host-keys")
	reader := NewRecordStore(NewFileBlobs(dir), keys.NewManager(readerKeys))

	_, ok := reader.Load(ctx, 5)

	assert.False(t, ok)
	_, err := os.Stat(filepath.Join(readerKeys, "5.key"))
	assert.True(t, os.IsNotExist(err))
}
