package report

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/tileworld/internal/scene"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

func addTile(store *scene.MemoryStore, t tile.Type, pos mgl64.Vec3) scene.Handle {
	h := store.CreateEntity(scene.KindTile)
	sp := store.AttachSprite(h)
	sp.Tile = t
	sp.Position = pos
	sp.Size = mgl64.Vec3{22, 22, 1}
	return h
}

func readLines(t *testing.T, path string) []TileRecord {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open dump: %v", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer dec.Close()

	var out []TileRecord
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		var rec TileRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("decode line %q: %v", sc.Text(), err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan dump: %v", err)
	}
	return out
}

func TestDump(t *testing.T) {
	store := scene.NewMemoryStore(0)
	handles := []scene.Handle{
		addTile(store, tile.Grass, mgl64.Vec3{0, 20, 0}),
		addTile(store, tile.Gold, mgl64.Vec3{40, -60, 0}),
		store.CreateEntity(scene.KindTile), // no sprite
	}

	path := filepath.Join(t.TempDir(), "out", "tiles.jsonl.zst")
	n, err := Dump(path, store, handles)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Dump() = %d, want 2", n)
	}

	recs := readLines(t, path)
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	want := TileRecord{ID: uint32(handles[1]), Type: tile.Gold.String(), X: 40, Y: -60, W: 22, H: 22}
	if recs[1] != want {
		t.Errorf("record 1 = %+v, want %+v", recs[1], want)
	}
}

func TestWriterClosed(t *testing.T) {
	w, err := NewWriter(filepath.Join(t.TempDir(), "tiles.jsonl.zst"))
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
	if err := w.Write(TileRecord{}); err == nil {
		t.Error("Write() after Close error = nil, want error")
	}
}

func TestCounts(t *testing.T) {
	store := scene.NewMemoryStore(0)
	var handles []scene.Handle
	for _, tt := range []tile.Type{tile.Stone, tile.Stone, tile.Silver, tile.Dirt} {
		handles = append(handles, addTile(store, tt, mgl64.Vec3{}))
	}

	got := Counts(store, handles)
	want := map[tile.Type]int{tile.Stone: 2, tile.Silver: 1, tile.Dirt: 1}
	if len(got) != len(want) {
		t.Fatalf("Counts() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Counts()[%v] = %d, want %d", k, got[k], v)
		}
	}
}
