package keys

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/customerr"
)

// KeySize matches the XChaCha20-Poly1305 key length.
const KeySize = 32

const (
	keyExt   = ".key"
	dirPerm  = 0o700
	filePerm = 0o600
)

type Manager struct {
	dir string
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

func (m *Manager) path(userID int64) string {
	return filepath.Join(m.dir, strconv.FormatInt(userID, 10)+keyExt)
}

// KeyFor returns the user's key, generating and persisting a random one on first use.
func (m *Manager) KeyFor(userID int64) ([]byte, error) {
	key, err := m.load(userID)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, customerr.NewStorageError("load key", err)
	}

	key, err = m.generate(userID)
	if errors.Is(err, os.ErrExist) {
		// lost the race to another writer, theirs wins
		key, err = m.load(userID)
	}
	if err != nil {
		return nil, customerr.NewStorageError("generate key", err)
	}
	return key, nil
}

// ExistingKey returns the user's key without creating one.
func (m *Manager) ExistingKey(userID int64) ([]byte, error) {
	key, err := m.load(userID)
	if err != nil {
		return nil, customerr.NewStorageError("load key", err)
	}
	return key, nil
}

func (m *Manager) load(userID int64) ([]byte, error) {
	raw, err := os.ReadFile(m.path(userID))
	if err != nil {
		return nil, err
	}
	key, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, errors.Wrap(err, "decode key")
	}
	if len(key) != KeySize {
		return nil, errors.Errorf("key for user %d has %d bytes, want %d", userID, len(key), KeySize)
	}
	return key, nil
}

func (m *Manager) generate(userID int64) ([]byte, error) {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return nil, errors.Wrap(err, "create keys dir")
	}

	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Wrap(err, "read random")
	}

	f, err := os.OpenFile(m.path(userID), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return nil, err
	}
	_, err = f.WriteString(base64.StdEncoding.EncodeToString(key))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(m.path(userID))
		return nil, errors.Wrap(err, "write key")
	}

	logger.Info("generated key", zap.Int64("userID", userID))
	return key, nil
}
