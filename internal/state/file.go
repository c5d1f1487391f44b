package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the state file inside the repository's .git directory.
const FileName = "gribdata.yml"

// Path returns the state file location for the repository rooted at root.
func Path(root string) string {
	return filepath.Join(root, ".git", FileName)
}

// Load reads the state file of the repository rooted at root. A missing
// file yields an empty document; an unreadable or malformed file is an error.
func Load(root string) (*GribData, error) {
	path := Path(root)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var data GribData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	data.ApplyDefaults()
	return &data, nil
}

// Save writes data to the state file of the repository rooted at root. The
// file is replaced by rename so an interrupted write leaves the old file intact.
func Save(root string, data *GribData) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	path := Path(root)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".gribdata-%s.tmp", uuid.New().String()))
	if err := writeSynced(tmp, out); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp state file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	return nil
}
