// Package filestore persists uploaded blobs on local disk and hands out
// URLs under the configured public host.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	dir     string
	urlHost string
}

// New creates the root directory if needed.
func New(dir, urlHost string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, urlHost: strings.TrimRight(urlHost, "/")}, nil
}

// Dir returns the root directory, for serving files over HTTP.
func (s *Store) Dir() string { return s.dir }

// Save writes the blob under name (a relative path such as
// "profiles/uid.jpg") and returns its public URL. An existing blob with the
// same name is replaced.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	clean := filepath.Clean(name)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob name %q", name)
	}

	path := filepath.Join(s.dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}

	return s.urlHost + "/files/" + filepath.ToSlash(clean), nil
}
