package storage

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

const (
	blobExt      = ".blob"
	dataDirPerm  = 0o700
	dataFilePerm = 0o600
)

// FileBlobs keeps one <userID>.blob file per user in a directory.
type FileBlobs struct {
	dir string
}

func NewFileBlobs(dir string) *FileBlobs {
	return &FileBlobs{dir: dir}
}

func (s *FileBlobs) path(userID int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(userID, 10)+blobExt)
}

func (s *FileBlobs) Read(_ context.Context, userID int64) ([]byte, error) {
	blob, err := os.ReadFile(s.path(userID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return blob, err
}

// Write replaces the blob atomically: temp file, fsync, rename.
func (s *FileBlobs) Write(_ context.Context, userID int64, blob []byte) error {
	if err := os.MkdirAll(s.dir, dataDirPerm); err != nil {
		return errors.Wrap(err, "create data dir")
	}

	tmp, err := os.CreateTemp(s.dir, "."+strconv.FormatInt(userID, 10)+"-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp blob")
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(blob); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write temp blob")
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "sync temp blob")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp blob")
	}
	if err = os.Chmod(tmpName, dataFilePerm); err != nil {
		return errors.Wrap(err, "chmod temp blob")
	}
	if err = os.Rename(tmpName, s.path(userID)); err != nil {
		return errors.Wrap(err, "replace blob")
	}
	return nil
}

func (s *FileBlobs) List(_ context.Context) ([]int64, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read data dir")
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, blobExt) {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSuffix(name, blobExt), 10, 64)
		if err != nil {
			logger.Warn("skipping foreign file in data dir", zap.String("file", name))
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
