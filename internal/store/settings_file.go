// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

// KeywordsVersionKey is the settings key holding the version tag of the last
// fully applied feed.
const KeywordsVersionKey = "KEYWORDS_VERSION_KEY"

// fileSettingsStorage is a small key/value store persisted as a JSON object.
// Every Set rewrites the whole file through a temporary file and a rename so
// a crash never leaves a half-written document behind.
type fileSettingsStorage struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	values map[string]string
}

// NewFileSettingsStorage loads the settings file at path. A missing file is
// treated as empty. The path ":memory:" keeps settings in memory only.
func NewFileSettingsStorage(path string) (SettingsStorage, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &fileSettingsStorage{
		path:     path,
		inMemory: path == ":memory:",
		values:   make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSettingsStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read settings file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	values := make(map[string]string)
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode settings file: %w", err)
	}
	s.values = values

	return nil
}

func (s *fileSettingsStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

// Get returns the value stored under key or [ErrSettingNotFound].
func (s *fileSettingsStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrSettingNotFound
	}
	return value, nil
}

// Set stores value under key and persists the file.
func (s *fileSettingsStorage) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.persist(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "fileSettingsStorage.Set").
			Str("key", key).
			Msg("failed to persist settings")
		return err
	}

	return nil
}
