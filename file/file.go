package file

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/basscard/persist"
)

// LoadChart reads a chord chart from disk.
func LoadChart(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", persist.ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading chart %s: %w", path, err)
	}
	return string(data), nil
}
