// Package scene holds entities and their sprite components.
package scene

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/texture"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

// Handle identifies an entity. The zero Handle is never issued.
type Handle uint32

// Kind classifies an entity.
type Kind uint8

const (
	KindTile Kind = iota + 1
	KindPlayer
)

// Sprite is the drawable component of an entity. Tile is the material the
// entity was created as.
type Sprite struct {
	Texture  *texture.Texture
	Position mgl64.Vec3
	Size     mgl64.Vec3
	UV       texture.UV
	FlipX    bool
	Tile     tile.Type
}

// Store creates entities and attaches components to them.
type Store interface {
	CreateEntity(kind Kind) Handle
	// AttachSprite adds a sprite to h and returns it, or nil when the
	// component cannot be created.
	AttachSprite(h Handle) *Sprite
	// Sprite returns the sprite of h, or nil.
	Sprite(h Handle) *Sprite
}

// MemoryStore is an in-process Store. A positive sprite limit caps how many
// sprites may exist; AttachSprite returns nil past it.
type MemoryStore struct {
	mu      sync.RWMutex
	kinds   map[Handle]Kind
	sprites map[Handle]*Sprite
	limit   int

	nextID atomic.Uint32
}

// NewMemoryStore creates a store. limit <= 0 means unlimited.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		kinds:   make(map[Handle]Kind),
		sprites: make(map[Handle]*Sprite),
		limit:   limit,
	}
}

// CreateEntity registers a new entity of kind.
func (s *MemoryStore) CreateEntity(kind Kind) Handle {
	h := Handle(s.nextID.Add(1))
	s.mu.Lock()
	s.kinds[h] = kind
	s.mu.Unlock()
	return h
}

func (s *MemoryStore) AttachSprite(h Handle) *Sprite {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.kinds[h]; !ok {
		return nil
	}
	if sp, ok := s.sprites[h]; ok {
		return sp
	}
	if s.limit > 0 && len(s.sprites) >= s.limit {
		return nil
	}

	sp := &Sprite{Size: mgl64.Vec3{1, 1, 1}}
	s.sprites[h] = sp
	return sp
}

func (s *MemoryStore) Sprite(h Handle) *Sprite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sprites[h]
}

// Kind returns the kind of h and whether it exists.
func (s *MemoryStore) Kind(h Handle) (Kind, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	k, ok := s.kinds[h]
	return k, ok
}

// Len returns the number of entities.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.kinds)
}
