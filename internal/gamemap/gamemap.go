// Package gamemap stores painted tile groups and the assets committed for
// them. It answers the auto-tiler's neighbour questions and receives its
// results.
package gamemap

import "tilesmith/internal/autotile"

// Rect is an axis-aligned rectangle with inclusive edges, used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Area converts r to the half-open rectangle the auto-tiler iterates.
func (r Rect) Area() autotile.Rect {
	return autotile.Rect{Left: r.X1, Top: r.Y1, Right: r.X2 + 1, Bottom: r.Y2 + 1}
}

// GameMap holds the cell grid and room list for one map layer.
type GameMap struct {
	Width, Height int
	Cells         [][]Cell
	Rooms         []Rect
}

// New creates an unpainted GameMap.
func New(width, height int) *GameMap {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &GameMap{Width: width, Height: height, Cells: cells}
}

// Bounds returns the whole map as a half-open rectangle.
func (m *GameMap) Bounds() autotile.Rect {
	return autotile.Rect{Right: m.Width, Bottom: m.Height}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the cell at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Cell {
	return &m.Cells[y][x]
}

// Set replaces the cell at (x, y).
func (m *GameMap) Set(x, y int, c Cell) {
	m.Cells[y][x] = c
}

// Paint assigns group to (x, y) and drops any committed asset there.
// Out-of-bounds positions are ignored.
func (m *GameMap) Paint(x, y, group int) {
	if !m.InBounds(x, y) {
		return
	}
	m.Cells[y][x] = MakeCell(group)
}

// Fill paints every in-bounds cell of r.
func (m *GameMap) Fill(r Rect, group int) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			m.Paint(x, y, group)
		}
	}
}

// GroupAt returns the group painted at (x, y), or NoGroup when out of bounds.
func (m *GameMap) GroupAt(x, y int) int {
	if !m.InBounds(x, y) {
		return NoGroup
	}
	return m.Cells[y][x].Group
}

// SameGroup returns a neighbour predicate for group. It is false outside the
// map and for unpainted cells.
func (m *GameMap) SameGroup(group int) autotile.NeighborFunc {
	return func(p autotile.Position) bool {
		return group != NoGroup && m.GroupAt(p.X, p.Y) == group
	}
}

// Commit writes each choice into its cell and returns how many were stored.
// Choices outside the map are skipped.
func (m *GameMap) Commit(choices map[autotile.Position]autotile.TileChoice) int {
	n := 0
	for p, c := range choices {
		if !m.InBounds(p.X, p.Y) {
			continue
		}
		cell := &m.Cells[p.Y][p.X]
		cell.Asset = c.Asset
		cell.Placed = true
		n++
	}
	return n
}

// ClearAssets forgets every committed asset, leaving groups intact.
func (m *GameMap) ClearAssets() {
	for y := range m.Cells {
		for x := range m.Cells[y] {
			m.Cells[y][x].Asset = autotile.AssetRef{}
			m.Cells[y][x].Placed = false
		}
	}
}

// Count returns the number of cells painted with group.
func (m *GameMap) Count(group int) int {
	n := 0
	for y := range m.Cells {
		for x := range m.Cells[y] {
			if m.Cells[y][x].Group == group {
				n++
			}
		}
	}
	return n
}
