package receipts

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"max.ks1230/expense-bot/internal/model/customerr"
)

const (
	dirMode  = 0o700
	fileMode = 0o600
)

// LocalStore keeps receipts under <dir>/<userID>/.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// SaveReceipt returns the path the photo was written to.
func (s *LocalStore) SaveReceipt(_ context.Context, userID int64, photo []byte) (string, error) {
	name := filepath.Join(s.dir, filepath.FromSlash(objectName(userID)))

	if err := os.MkdirAll(filepath.Dir(name), dirMode); err != nil {
		return "", customerr.NewStorageError("create receipts dir", err)
	}
	if err := os.WriteFile(name, photo, fileMode); err != nil {
		return "", customerr.NewStorageError("write receipt", errors.Wrap(err, name))
	}
	return name, nil
}
