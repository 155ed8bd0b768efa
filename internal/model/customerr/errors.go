package customerr

import (
	"github.com/pkg/errors"
)

// ErrRateUnavailable is returned when neither the rate service nor any cached value
// can provide a rate for the requested currency.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// UserInputError carries a message meant to be shown back to the user.
type UserInputError struct {
	Err string
}

func (e *UserInputError) Error() string {
	return e.Err
}

func NewUserInputError(msg string) error {
	return &UserInputError{Err: msg}
}

// StorageError wraps disk, database and decryption failures.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// NetworkError wraps failures talking to the rate service, the mail relay or the chat API.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func NewNetworkError(op string, err error) error {
	return &NetworkError{Op: op, Err: err}
}

func IsUserInput(err error) bool {
	var target *UserInputError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}
