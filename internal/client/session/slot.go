package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/storerating/internal/cryptox"
	"github.com/dmitrijs2005/storerating/internal/filex"
)

// SlotRepository is a tiny key/value store for persisted client state.
// Get returns (nil, nil) for a missing key; Delete is idempotent.
type SlotRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemorySlots lives as long as the process, which is the console's
// equivalent of a browser tab.
type MemorySlots struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{slots: make(map[string][]byte)}
}

func (m *MemorySlots) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.slots[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemorySlots) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemorySlots) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// FileSlots keeps one sealed file per key under dir. Values are encrypted
// with the passphrase so a token at rest is not readable by other users.
type FileSlots struct {
	dir        string
	passphrase []byte
}

func NewFileSlots(dir string, passphrase []byte) (*FileSlots, error) {
	if len(passphrase) == 0 {
		return nil, cryptox.ErrEmptyPassphrase
	}
	dir, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}
	return &FileSlots{dir: dir, passphrase: passphrase}, nil
}

func (f *FileSlots) path(key string) string {
	return filepath.Join(f.dir, key+".session")
}

func (f *FileSlots) Get(_ context.Context, key string) ([]byte, error) {
	sealed, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot[%s]: %w", key, err)
	}
	plain, err := cryptox.Open(sealed, f.passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to open slot[%s]: %w", key, err)
	}
	return plain, nil
}

func (f *FileSlots) Set(_ context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(value, f.passphrase)
	if err != nil {
		return fmt.Errorf("failed to seal slot[%s]: %w", key, err)
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write slot[%s]: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write slot[%s]: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write slot[%s]: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("failed to write slot[%s]: %w", key, err)
	}
	return nil
}

func (f *FileSlots) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete slot[%s]: %w", key, err)
	}
	return nil
}
