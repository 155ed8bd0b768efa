package storage

import (
	"context"
	"crypto/subtle"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/customerr"
)

const pinLength = 4

// ErrNotFound is returned by blob backends when a user has no blob yet.
var ErrNotFound = errors.New("blob not found")

type blobStore interface {
	Read(ctx context.Context, userID int64) ([]byte, error)
	Write(ctx context.Context, userID int64, blob []byte) error
	List(ctx context.Context) ([]int64, error)
}

type keyProvider interface {
	KeyFor(userID int64) ([]byte, error)
	ExistingKey(userID int64) ([]byte, error)
}

// RecordStore keeps one encrypted record per user. Nothing is cached between calls.
type RecordStore struct {
	blobs blobStore
	keys  keyProvider
	locks *userLocks
}

func NewRecordStore(blobs blobStore, keys keyProvider) *RecordStore {
	return &RecordStore{
		blobs: blobs,
		keys:  keys,
		locks: newUserLocks(),
	}
}

// Load returns the user's record. Missing, empty and undecryptable blobs all
// come back as not found; the reason is logged, never returned.
func (s *RecordStore) Load(ctx context.Context, userID int64) (user.Record, bool) {
	blob, err := s.blobs.Read(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return user.Record{}, false
	}
	if err != nil {
		logger.Error("cannot read record", zap.Int64("userID", userID), zap.Error(err))
		return user.Record{}, false
	}
	if len(blob) == 0 {
		logger.Warn("empty record blob", zap.Int64("userID", userID))
		return user.Record{}, false
	}

	key, err := s.keys.ExistingKey(userID)
	if err != nil {
		logger.Error("cannot get user key", zap.Int64("userID", userID), zap.Error(err))
		return user.Record{}, false
	}

	plaintext, err := open(key, userID, blob)
	if err != nil {
		logger.Error("cannot decrypt record", zap.Int64("userID", userID), zap.Error(err))
		return user.Record{}, false
	}

	var rec user.Record
	if err = json.Unmarshal(plaintext, &rec); err != nil {
		logger.Error("malformed record", zap.Int64("userID", userID), zap.Error(err))
		return user.Record{}, false
	}
	rec.Normalize()
	return rec, true
}

// Save encrypts and replaces the user's record. Errors are logged and returned
// as StorageError.
func (s *RecordStore) Save(ctx context.Context, userID int64, rec user.Record) error {
	err := s.save(ctx, userID, rec)
	if err != nil {
		logger.Error("cannot save record", zap.Int64("userID", userID), zap.Error(err))
		return customerr.NewStorageError("save record", err)
	}
	return nil
}

func (s *RecordStore) save(ctx context.Context, userID int64, rec user.Record) error {
	rec.Normalize()
	plaintext, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal record")
	}

	key, err := s.keys.KeyFor(userID)
	if err != nil {
		return err
	}

	blob, err := seal(key, userID, plaintext)
	if err != nil {
		return err
	}
	return s.blobs.Write(ctx, userID, blob)
}

// Update loads the record (or a fresh default one), applies fn and saves the result,
// all under the user's lock. Nothing is saved when fn fails.
func (s *RecordStore) Update(ctx context.Context, userID int64, fn func(rec *user.Record) error) (user.Record, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	rec, ok := s.Load(ctx, userID)
	if !ok {
		rec = user.NewRecord()
	}
	if err := fn(&rec); err != nil {
		return user.Record{}, err
	}
	if err := s.Save(ctx, userID, rec); err != nil {
		return user.Record{}, err
	}
	return rec, nil
}

func (s *RecordStore) SetPin(ctx context.Context, userID int64, pin string) error {
	if !ValidPin(pin) {
		return customerr.NewUserInputError("PIN must be exactly 4 digits")
	}
	_, err := s.Update(ctx, userID, func(rec *user.Record) error {
		rec.SetPin(pin)
		return nil
	})
	return err
}

func (s *RecordStore) VerifyPin(ctx context.Context, userID int64, candidate string) bool {
	rec, ok := s.Load(ctx, userID)
	if !ok || !rec.HasPin() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*rec.Pin), []byte(candidate)) == 1
}

// Users lists every user that has a stored record.
func (s *RecordStore) Users(ctx context.Context) ([]int64, error) {
	ids, err := s.blobs.List(ctx)
	if err != nil {
		return nil, customerr.NewStorageError("list users", err)
	}
	return ids, nil
}

func ValidPin(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
