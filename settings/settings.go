// Package settings persists the selected provider as a small JSON document.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"weather/manager"
)

// Save writes kind to path, creating missing parent directories.
func Save(path string, kind manager.Kind) error {
	if path == "" {
		return manager.ErrNoConfigPath
	}

	data, err := json.Marshal(kind)
	if err != nil {
		return fmt.Errorf("%w: %w", manager.ErrSerialization, err)
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w %s: %w", manager.ErrDirectoryCreation, dir, err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", manager.ErrFileWriting, path, err)
	}

	return nil
}

// Load returns the persisted kind. A missing path or file, and content
// that is not a known kind, all yield the default kind.
func Load(path string) (manager.Kind, error) {
	if path == "" {
		return manager.OpenWeather, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config file not found, using default provider", "path", path)
		return manager.OpenWeather, nil
	}
	if err != nil {
		return manager.OpenWeather, fmt.Errorf("read config file %s: %w", path, err)
	}

	var kind manager.Kind
	if err = json.Unmarshal(data, &kind); err != nil {
		slog.Debug("config file unreadable, using default provider", "path", path, "error", err)
		return manager.OpenWeather, nil
	}

	return kind, nil
}
