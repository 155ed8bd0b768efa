package receipts

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/model/customerr"
)

func Test_OnLocalSave_ShouldWriteUniqueFilePerReceipt(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	first, err := store.SaveReceipt(context.Background(), 42, []byte("jpeg-1"))
	require.NoError(t, err)
	second, err := store.SaveReceipt(context.Background(), 42, []byte("jpeg-2"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(dir, "42"), filepath.Dir(first))
	assert.True(t, strings.HasSuffix(first, ".jpg"))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-1", string(data))

	info, err := os.Stat(second)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func Test_OnLocalSave_ShouldFailWhenDirIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "receipts")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := NewLocalStore(blocker).SaveReceipt(context.Background(), 42, []byte("jpeg"))

	assert.True(t, customerr.IsStorage(err))
}

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func Test_OnS3Save_ShouldPutUnderUserPrefix(t *testing.T) {
	putter := &fakePutter{}
	store := newS3Store(putter, "bills")

	uri, err := store.SaveReceipt(context.Background(), 42, []byte("jpeg"))

	require.NoError(t, err)
	assert.Equal(t, "bills", aws.ToString(putter.in.Bucket))
	assert.True(t, strings.HasPrefix(aws.ToString(putter.in.Key), "receipts/42/"))
	assert.Equal(t, "s3://bills/"+aws.ToString(putter.in.Key), uri)
	assert.Equal(t, "jpeg", string(putter.body))
}

func Test_OnS3Failure_ShouldReturnNetworkError(t *testing.T) {
	store := newS3Store(&fakePutter{err: errors.New("denied")}, "bills")

	_, err := store.SaveReceipt(context.Background(), 42, []byte("jpeg"))

	assert.True(t, customerr.IsNetwork(err))
}
