// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive command history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const name = ".chain_history"

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Path returns the location of the history file. CHAIN_HISTORY overrides
// the default of ~/.chain_history.
func Path() (string, error) {
	if p := os.Getenv("CHAIN_HISTORY"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, name), nil
}

// Save passes a freshly truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}

	return op(p)
}
