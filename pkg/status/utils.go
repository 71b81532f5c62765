package status

import (
	"errors"
	"io/fs"
)

// isNotExist checks if an error indicates a file doesn't exist
func isNotExist(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrNotExist)
}
