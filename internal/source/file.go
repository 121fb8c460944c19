package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xxxsen/drinkmap/internal/source/model"
)

func init() {
	Register("file", fileSourceFactory)
}

// fileSourceFactory accepts both file:///abs/path and file://relative/path;
// in the latter form url.Parse reports the first segment as host.
func fileSourceFactory(schema string, host string, params *model.Params) (ISource, error) {
	p := filepath.Clean(filepath.FromSlash(host + params.URL.Path))
	if p == "." || p == "" {
		return nil, fmt.Errorf("file source requires a path")
	}
	return &fileSource{path: p, format: params.CustomParams.Format}, nil
}

type fileSource struct {
	path   string
	format string
}

func (f *fileSource) String() string {
	return "file:" + f.path
}

func (f *fileSource) Format() string {
	return f.format
}

func (f *fileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read file source %s: %w", f.path, err)
	}
	return data, nil
}
