package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// FileExtension is the extension of level files.
const FileExtension = ".txt"

//go:embed data/*.txt
var embedded embed.FS

// ErrNotFound is returned when a level ID has no file.
var ErrNotFound = errors.New("level: not found")

// Asset is the raw text of a level as supplied by a level source.
type Asset struct {
	ID   string
	Text string
}

// Parse parses the asset text.
func (a *Asset) Parse() (Level, error) {
	lvl, err := Parse(a.Text)
	if err != nil {
		return Level{}, fmt.Errorf("parsing %s: %w", a.ID, err)
	}
	if lvl.Name == "" {
		lvl.Name = a.ID
	}
	return lvl, nil
}

// Loader reads level assets from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewEmbeddedLoader creates a loader over the levels shipped with the binary.
func NewEmbeddedLoader() *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return NewLoader(sub)
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// Load returns the asset with the given ID.
func (l *Loader) Load(id string) (*Asset, error) {
	data, err := fs.ReadFile(l.fsys, id+FileExtension)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", id, err)
	}
	return &Asset{ID: id, Text: string(data)}, nil
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	var ids []string

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(path.Ext(p)) != FileExtension {
			return nil
		}
		ids = append(ids, strings.TrimSuffix(p, path.Ext(p)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	sort.Strings(ids)
	return ids, nil
}

// ListWithPrefix returns the sorted IDs starting with prefix.
func (l *Loader) ListWithPrefix(prefix string) ([]string, error) {
	all, err := l.ListIDs()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(all))
	for _, id := range all {
		if strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
