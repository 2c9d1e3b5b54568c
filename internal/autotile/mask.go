// Package autotile infers which tile variant belongs in a grid cell from the
// cells around it. A cell's eight neighbours are folded into a
// ConnectionMask, the mask is resolved against a TileSet by the set's
// selection Algorithm, and the result is a TileChoice the caller commits into
// its own layer storage.
package autotile

import (
	"fmt"
	"strings"
)

// ConnectionMask records which of a cell's eight neighbours belong to the
// same tile group.
type ConnectionMask uint8

const (
	N  ConnectionMask = 1 << iota // (0,-1)
	E                             // (1,0)
	S                             // (0,1)
	W                             // (-1,0)
	NE                            // (1,-1)
	SE                            // (1,1)
	SW                            // (-1,1)
	NW                            // (-1,-1)
)

const (
	None     ConnectionMask = 0
	All      ConnectionMask = N | E | S | W | NE | SE | SW | NW
	Cardinal ConnectionMask = N | E | S | W
	Diagonal ConnectionMask = NE | SE | SW | NW
)

// Position is an integer grid coordinate. Y grows downwards.
type Position struct {
	X, Y int
}

// NeighborFunc reports whether the cell at pos belongs to the tile group being
// resolved. It must be total: positions outside the grid return false.
type NeighborFunc func(pos Position) bool

// neighbor pairs a direction bit with its grid offset.
type neighbor struct {
	bit    ConnectionMask
	dx, dy int
	name   string
}

// neighbors lists the eight probes in bit order.
var neighbors = [8]neighbor{
	{N, 0, -1, "N"},
	{E, 1, 0, "E"},
	{S, 0, 1, "S"},
	{W, -1, 0, "W"},
	{NE, 1, -1, "NE"},
	{SE, 1, 1, "SE"},
	{SW, -1, 1, "SW"},
	{NW, -1, -1, "NW"},
}

// ComputeMask probes the eight neighbours of pos and sets the bit of every
// neighbour for which isSameGroup returns true.
func ComputeMask(pos Position, isSameGroup NeighborFunc) ConnectionMask {
	var m ConnectionMask
	for _, n := range neighbors {
		if isSameGroup(Position{X: pos.X + n.dx, Y: pos.Y + n.dy}) {
			m |= n.bit
		}
	}
	return m
}

// Has reports whether every bit of bits is set in m.
func (m ConnectionMask) Has(bits ConnectionMask) bool {
	return m&bits == bits
}

// Cardinal returns m with the diagonal bits cleared.
func (m ConnectionMask) Cardinal() ConnectionMask {
	return m & Cardinal
}

// SubsetOf reports whether every bit set in m is also set in other.
func (m ConnectionMask) SubsetOf(other ConnectionMask) bool {
	return m&other == m
}

// String renders the mask as "N|E|SW", "None" or "All".
func (m ConnectionMask) String() string {
	switch m {
	case None:
		return "None"
	case All:
		return "All"
	}
	parts := make([]string, 0, 8)
	for _, n := range neighbors {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseConnectionMask builds a mask from direction names such as "n", "NE"
// or "all". Names are case-insensitive.
func ParseConnectionMask(names []string) (ConnectionMask, error) {
	var m ConnectionMask
	for _, raw := range names {
		name := strings.ToUpper(strings.TrimSpace(raw))
		switch name {
		case "", "NONE":
			continue
		case "ALL":
			m |= All
			continue
		case "CARDINAL":
			m |= Cardinal
			continue
		}
		found := false
		for _, n := range neighbors {
			if n.name == name {
				m |= n.bit
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("unknown direction %q", raw)
		}
	}
	return m, nil
}
