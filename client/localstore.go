package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// LocalStore is the fallback persistence used when the API is unreachable.
// Implementations are best-effort: a failed read reports a miss and a
// failed write is logged, never surfaced.
type LocalStore interface {
	Get(key string, out interface{}) bool
	Set(key string, value interface{})
}

// FileStore keeps one JSON file per key under a directory.
type FileStore struct {
	dir    string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewFileStore prepares the fallback directory. Creation failure is logged
// and subsequent operations degrade to misses.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "askiep-local")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("local store directory unavailable", zap.String("dir", dir), zap.Error(err))
	}
	return &FileStore{dir: dir, logger: logger}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads a cached value into out. Returns false on any failure.
func (s *FileStore) Get(key string, out interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("local store entry unreadable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set persists a value. Failures are logged and swallowed.
func (s *FileStore) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("local store value not serialisable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		s.logger.Warn("local store write failed", zap.String("key", key), zap.Error(err))
	}
}
