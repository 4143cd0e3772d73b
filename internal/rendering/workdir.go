package rendering

import (
	"errors"
	"fmt"
	"os"
)

// WithDir runs fn with the process working directory set to dir. The previous
// working directory is restored afterwards, also when fn returns an error or panics.
func WithDir(dir string, fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("failed to enter %s: %w", dir, err)
	}
	defer func() {
		if rerr := os.Chdir(prev); rerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to restore working directory %s: %w", prev, rerr))
		}
	}()

	return fn()
}
