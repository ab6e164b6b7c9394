package utils

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// ReadConfigBytes returns the contents of overridePath when it is set, otherwise the
// named file from fsys. Seed data ships embedded; an operator can point at a file instead.
func ReadConfigBytes(overridePath string, fsys fs.FS, name string) ([]byte, string, error) {
	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, overridePath, fmt.Errorf("failed to read file %s: %w", overridePath, err)
		}
		return data, overridePath, nil
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, name, fmt.Errorf("failed to read embedded file %s: %w", name, err)
	}
	return data, name, nil
}

// DecodeJSON unmarshals data into target, naming the source in the error.
func DecodeJSON(data []byte, source string, target interface{}) error {
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", source, err)
	}
	return nil
}
