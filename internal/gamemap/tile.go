package gamemap

import "tilesmith/internal/autotile"

// NoGroup marks an unpainted cell.
const NoGroup = 0

// Cell holds the tile group painted at one map position and the asset most
// recently committed for it.
type Cell struct {
	Group  int
	Asset  autotile.AssetRef
	Placed bool // Asset is valid
}

// MakeCell returns an unplaced cell belonging to group.
func MakeCell(group int) Cell {
	return Cell{Group: group}
}

// Empty reports whether no group has been painted here.
func (c Cell) Empty() bool {
	return c.Group == NoGroup
}
