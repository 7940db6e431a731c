package backdrop

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// dirExts also accepts WebP since local files skip the listing filter.
var dirExts = []string{".jpg", ".jpeg", ".png", ".webp"}

// DirSource serves images from <root>/<category>/ for offline play.
type DirSource struct {
	Root string
}

// NewDirSource creates a directory source.
func NewDirSource(root string) *DirSource {
	return &DirSource{Root: root}
}

// List implements Source.
func (s *DirSource) List(ctx context.Context, category string) ([]ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir := filepath.Join(s.Root, category)
	entries, err := os.ReadDir(dir)
	if err != nil {
		kind := KindTransient
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindMalformed
		}
		return nil, &FetchError{Kind: kind, Op: "list", URL: dir, Err: err}
	}

	var refs []ImageRef
	for _, e := range entries {
		if e.IsDir() || !hasImageExt(e.Name(), dirExts) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		refs = append(refs, ImageRef{ID: path, URL: path, Category: category})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs, nil
}

// Fetch implements Source.
func (s *DirSource) Fetch(ctx context.Context, ref ImageRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(ref.URL)
	if err != nil {
		return nil, &FetchError{Kind: KindMalformed, Op: "fetch", URL: ref.URL, Err: err}
	}
	return data, nil
}
