// Package session provides the persistence boundary for the single admin
// bearer credential. Stores do no network validation: a token is opaque here
// and lives until explicitly cleared.
package session

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mastersolis/site-gateway/internal/core/ports"
)

// tokenKey is the fixed name the credential is stored under, shared by every
// store implementation.
const tokenKey = "auth_token"

// FileStore keeps the credential in a single file so it survives restarts.
type FileStore struct {
	path string
}

var _ ports.SessionStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStore) Set(_ context.Context, token string) error {
	if token == "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) IsActive(ctx context.Context) bool {
	token, err := s.Get(ctx)
	return err == nil && token != ""
}
