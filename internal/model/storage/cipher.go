package storage

import (
	"crypto/rand"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

var errBlobTooShort = errors.New("blob too short")

// seal encrypts plaintext with XChaCha20-Poly1305 and returns nonce||ciphertext.
// The user id is bound as associated data so a blob only opens for its owner.
func seal(key []byte, userID int64, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "new cipher")
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err = rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "read nonce")
	}

	return aead.Seal(nonce, nonce, plaintext, associatedData(userID)), nil
}

func open(key []byte, userID int64, blob []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "new cipher")
	}
	if len(blob) < aead.NonceSize()+aead.Overhead() {
		return nil, errBlobTooShort
	}

	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, associatedData(userID))
	if err != nil {
		return nil, errors.Wrap(err, "authenticate blob")
	}
	return plaintext, nil
}

func associatedData(userID int64) []byte {
	return []byte(strconv.FormatInt(userID, 10))
}
