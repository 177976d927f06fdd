// Package tile defines tile types and the atlas cells used to draw them.
package tile

// Type is the material of a tile entity.
type Type uint8

const (
	None Type = iota
	Grass
	Dirt
	Stone
	Gold
	Silver
	TreeNest
	TreeBranch
)

// Types lists every drawable tile type in texture load order.
var Types = []Type{Grass, Dirt, Stone, Gold, Silver, TreeBranch, TreeNest}

var typeNames = [...]string{
	None:       "none",
	Grass:      "grass",
	Dirt:       "dirt",
	Stone:      "stone",
	Gold:       "gold",
	Silver:     "silver",
	TreeNest:   "tree_nest",
	TreeBranch: "tree_branch",
}

func (t Type) String() string {
	if int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

func IsNone(t Type) bool   { return t == None }
func IsGrass(t Type) bool  { return t == Grass }
func IsDirt(t Type) bool   { return t == Dirt }
func IsStone(t Type) bool  { return t == Stone }
func IsGold(t Type) bool   { return t == Gold }
func IsSilver(t Type) bool { return t == Silver }

// IsTreeNest matches TreeBranch only; TreeNest itself is not matched.
// TODO: decide whether nest tiles should match once something renders
// them differently from branches, then fold in IsTreePart.
func IsTreeNest(t Type) bool { return t == TreeBranch }

// IsTreePart reports whether t is any part of a tree.
func IsTreePart(t Type) bool { return t == TreeNest || t == TreeBranch }

// Collides reports whether t takes part in collision. None never does.
func Collides(t Type) bool { return t != None }
