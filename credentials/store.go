package credentials

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tailored-agentic-units/speechgate/request"
)

// Store resolves named credential profiles.
// Implementations are stateless and perform I/O on each call.
type Store interface {
	// List returns the names of all available profiles.
	List(ctx context.Context) ([]string, error)
	// Load retrieves the profile with the given name.
	Load(ctx context.Context, name string) (*request.Credentials, error)
}

var profileExts = []string{".yaml", ".yml", ".json"}

type fileStore struct {
	root string
}

// NewFileStore creates a Store backed by a directory of profile files. The
// profile name is the file path relative to root without its extension, so
// root/tenants/acme.yaml is the profile "tenants/acme".
func NewFileStore(root string) Store {
	return &fileStore{root: root}
}

func (s *fileStore) List(_ context.Context) ([]string, error) {
	var names []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root {
				return fs.SkipAll
			}
			return err
		}

		if path != s.root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !slices.Contains(profileExts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return names, nil
}

// Load tries each supported extension in turn; YAML wins over JSON when both
// exist. Names that leave root are never found.
func (s *fileStore) Load(_ context.Context, name string) (*request.Credentials, error) {
	rel := filepath.FromSlash(name)
	if name == "" || !filepath.IsLocal(rel) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	base := filepath.Join(s.root, rel)

	for _, ext := range profileExts {
		c, err := Load(base + ext)
		if err == nil {
			return c, nil
		}
		if !isNotFound(err) {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}
