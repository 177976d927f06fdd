// Package texture loads tile textures and maps atlas cells to UVs.
package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
)

// ErrNotLoaded is wrapped by LoadAll when one or more textures failed.
var ErrNotLoaded = errors.New("texture not loaded")

// Texture is a loaded image. Only its pixel size matters to the world.
type Texture struct {
	Key    string
	Path   string
	Width  int
	Height int
}

// UV holds four corners as u,v pairs in the order bottom-left,
// bottom-right, top-right, top-left.
type UV [8]float32

// Loader resolves a texture by key and path.
type Loader interface {
	Load(ctx context.Context, key, path string) (*Texture, error)
}

// FileLoader reads image headers from disk below Root.
type FileLoader struct {
	Root string
}

func (l FileLoader) Load(ctx context.Context, key, path string) (*Texture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := filepath.Join(l.Root, path)
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", key, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", key, err)
	}
	return &Texture{Key: key, Path: full, Width: cfg.Width, Height: cfg.Height}, nil
}

// StaticLoader serves fixed sizes by path without touching disk. Paths
// absent from the map fail to load.
type StaticLoader map[string]image.Point

func (l StaticLoader) Load(_ context.Context, key, path string) (*Texture, error) {
	size, ok := l[path]
	if !ok {
		return nil, fmt.Errorf("load texture %s: no image at %q", key, path)
	}
	return &Texture{Key: key, Path: path, Width: size.X, Height: size.Y}, nil
}
