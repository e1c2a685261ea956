package repository

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"github.com/taxihub/driverapp/services/driver"
)

const (
	fileSaltSize = 16
	fileKeySize  = chacha20poly1305.KeySize
	fileMode     = 0o600
)

// FileCredentialStore persists credentials as an encrypted JSON file.
// The file holds salt, nonce and ciphertext; the key is derived from the
// passphrase with scrypt, so the file is useless without it.
type FileCredentialStore struct {
	path       string
	passphrase []byte

	mu sync.Mutex
}

// NewFileCredentialStore creates a store writing to path. The parent
// directory is created if missing.
func NewFileCredentialStore(path, passphrase string) (*FileCredentialStore, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("credential store passphrase must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}
	return &FileCredentialStore{
		path:       path,
		passphrase: []byte(passphrase),
	}, nil
}

// Get retrieves a stored value
func (s *FileCredentialStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", driver.ErrCredentialNotFound
	}
	return value, nil
}

// Set stores a value, rewriting the encrypted file
func (s *FileCredentialStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete removes a value; deleting a missing key is not an error
func (s *FileCredentialStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

func (s *FileCredentialStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	if len(raw) < fileSaltSize+chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("credential file is truncated")
	}

	salt := raw[:fileSaltSize]
	nonce := raw[fileSaltSize : fileSaltSize+chacha20poly1305.NonceSize]
	ciphertext := raw[fileSaltSize+chacha20poly1305.NonceSize:]

	aead, err := s.cipher(salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credential file: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(plaintext, &values); err != nil {
		return nil, fmt.Errorf("failed to parse credential file: %w", err)
	}
	return values, nil
}

func (s *FileCredentialStore) save(values map[string]string) error {
	plaintext, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	salt := make([]byte, fileSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	aead, err := s.cipher(salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, fileSaltSize+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, plaintext, nil)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, out, fileMode); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credential file: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) cipher(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(s.passphrase, salt, 1<<15, 8, 1, fileKeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	return aead, nil
}
