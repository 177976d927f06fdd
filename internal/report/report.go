// Package report dumps generated tiles for offline inspection.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/tileworld/internal/scene"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

// TileRecord is one line of a tile dump.
type TileRecord struct {
	ID   uint32  `json:"id"`
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// Writer writes zstd-compressed JSON lines to a single file.
type Writer struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	n   int
}

// NewWriter creates path, and its directory, for writing.
func NewWriter(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dump dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create dump: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriterSize(enc, 128*1024)}, nil
}

// Write appends one record.
func (w *Writer) Write(rec TileRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return os.ErrClosed
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

// Close flushes and closes the file. Closing twice is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return nil
	}
	var firstErr error
	if err := w.w.Flush(); err != nil {
		firstErr = err
	}
	if err := w.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	w.w, w.enc, w.f = nil, nil, nil
	return firstErr
}

// Record converts the sprite of h. ok is false when h has no sprite.
func Record(store scene.Store, h scene.Handle) (rec TileRecord, ok bool) {
	sp := store.Sprite(h)
	if sp == nil {
		return TileRecord{}, false
	}
	return TileRecord{
		ID:   uint32(h),
		Type: sp.Tile.String(),
		X:    sp.Position[0],
		Y:    sp.Position[1],
		Z:    sp.Position[2],
		W:    sp.Size[0],
		H:    sp.Size[1],
	}, true
}

// Dump writes every tile in handles to path.
func Dump(path string, store scene.Store, handles []scene.Handle) (int, error) {
	w, err := NewWriter(path)
	if err != nil {
		return 0, err
	}
	for _, h := range handles {
		rec, ok := Record(store, h)
		if !ok {
			continue
		}
		if err := w.Write(rec); err != nil {
			_ = w.Close()
			return w.Count(), fmt.Errorf("write tile %d: %w", h, err)
		}
	}
	if err := w.Close(); err != nil {
		return w.Count(), fmt.Errorf("close dump: %w", err)
	}
	return w.Count(), nil
}

// Counts tallies tiles per type.
func Counts(store scene.Store, handles []scene.Handle) map[tile.Type]int {
	out := make(map[tile.Type]int)
	for _, h := range handles {
		if sp := store.Sprite(h); sp != nil {
			out[sp.Tile]++
		}
	}
	return out
}
