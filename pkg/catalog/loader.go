package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed data/*.json
var embedded embed.FS

type Loader interface {
	Load(ctx context.Context) (Data, error)
}

// FSLoader reads one JSON array per collection from a filesystem.
// A missing file leaves its collection empty.
type FSLoader struct {
	fsys fs.FS
}

func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// EmbeddedLoader serves the data compiled into the binary.
func EmbeddedLoader() *FSLoader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return NewFSLoader(sub)
}

// DirLoader serves JSON files from dir.
func DirLoader(dir string) *FSLoader {
	return NewFSLoader(os.DirFS(dir))
}

func (l *FSLoader) Load(ctx context.Context) (Data, error) {
	var d Data
	files := []struct {
		name string
		dst  any
	}{
		{"jobs.json", &d.Jobs},
		{"startups.json", &d.Startups},
		{"events.json", &d.Events},
		{"team.json", &d.Team},
		{"faq.json", &d.FAQ},
		{"programs.json", &d.Programs},
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return Data{}, err
		}
		raw, err := fs.ReadFile(l.fsys, f.name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Data{}, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return Data{}, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	return d, nil
}

// Open loads through l and returns a validated store.
func Open(ctx context.Context, l Loader) (*Store, error) {
	d, err := l.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewStore(d)
}
