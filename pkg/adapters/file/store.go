package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/hexrune/pkg/domain"
)

// Ext is the extension of script asset files.
const Ext = ".hxr"

// Store implements ports.ScriptStore using the local filesystem.
// Each script is one binary file in BasePath.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".hexrune/scripts".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".hexrune", "scripts")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(assetID string) (string, error) {
	if assetID == "" {
		return "", fmt.Errorf("assetID cannot be empty")
	}
	if strings.ContainsAny(assetID, `/\`) || assetID == "." || assetID == ".." {
		return "", fmt.Errorf("invalid assetID %q", assetID)
	}
	return filepath.Join(s.BasePath, assetID+Ext), nil
}

// Save writes the script atomically: temp file, fsync, rename.
func (s *Store) Save(ctx context.Context, assetID string, data []byte) error {
	destPath, err := s.path(assetID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure script directory: %w", err)
	}

	// Same directory so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+assetID+"-*"+Ext+".part")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// os.Rename fails on Windows when the destination exists.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing script for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads the script file.
func (s *Store) Load(ctx context.Context, assetID string) ([]byte, error) {
	filePath, err := s.path(assetID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrScriptNotFound
		}
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return data, nil
}

// Delete removes the script file.
func (s *Store) Delete(ctx context.Context, assetID string) error {
	filePath, err := s.path(assetID)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete script file: %w", err)
	}
	return nil
}

// List returns the asset ids of every script file, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}

	ids := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != Ext || strings.HasPrefix(name, "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, Ext))
	}
	sort.Strings(ids)
	return ids, nil
}
