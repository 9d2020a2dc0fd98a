package store

import (
	"encoding/json"
	"errors"
	"os"
)

// readJSON reads path into out and reports whether the file existed. A
// missing file leaves out untouched; anything else that goes wrong (bad
// permissions, corrupt JSON) is surfaced, never treated as an empty store.
func readJSON(path string, out any) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, out)
}

// writeJSON writes v as indented JSON via a temp file then rename. Every
// store file can carry key material, so they are all written 0600.
func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
