package autotile

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultWeight is the selection weight given to variants added without one.
const DefaultWeight = 1.0

// TileType is the semantic role a variant plays in a group's outline.
type TileType uint8

const (
	TileCenter TileType = iota
	TileEdgeN
	TileEdgeS
	TileEdgeE
	TileEdgeW
	TileCornerNE
	TileCornerNW
	TileCornerSE
	TileCornerSW
	TileInnerCornerNE
	TileInnerCornerNW
	TileInnerCornerSE
	TileInnerCornerSW
	TileSingle
	TileEndpointN
	TileEndpointS
	TileEndpointE
	TileEndpointW
)

var tileTypeNames = [...]string{
	TileCenter:        "center",
	TileEdgeN:         "edge_n",
	TileEdgeS:         "edge_s",
	TileEdgeE:         "edge_e",
	TileEdgeW:         "edge_w",
	TileCornerNE:      "corner_ne",
	TileCornerNW:      "corner_nw",
	TileCornerSE:      "corner_se",
	TileCornerSW:      "corner_sw",
	TileInnerCornerNE: "inner_corner_ne",
	TileInnerCornerNW: "inner_corner_nw",
	TileInnerCornerSE: "inner_corner_se",
	TileInnerCornerSW: "inner_corner_sw",
	TileSingle:        "single",
	TileEndpointN:     "endpoint_n",
	TileEndpointS:     "endpoint_s",
	TileEndpointE:     "endpoint_e",
	TileEndpointW:     "endpoint_w",
}

// String returns the snake_case name of the tile type.
func (t TileType) String() string {
	if int(t) < len(tileTypeNames) {
		return tileTypeNames[t]
	}
	return "unknown"
}

// ParseTileType is the inverse of TileType.String. Hyphens are accepted in
// place of underscores.
func ParseTileType(s string) (TileType, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range tileTypeNames {
		if n == name {
			return TileType(i), nil
		}
	}
	return TileCenter, fmt.Errorf("unknown tile type %q", s)
}

// AssetRef points at one image inside one asset library. Resolving it to
// pixels is the asset store's job.
type AssetRef struct {
	Library int
	Image   int
}

func (a AssetRef) String() string {
	return fmt.Sprintf("%d:%d", a.Library, a.Image)
}

// TileChoice is the result of a selection: which asset goes in the cell.
type TileChoice struct {
	Asset  AssetRef
	Weight float64
}

// TileVariant is one candidate asset of a TileSet.
type TileVariant struct {
	Asset       AssetRef
	Type        TileType
	Connections ConnectionMask // neighbour pattern the asset depicts
	Weight      float64
}

// Choice strips the variant down to the asset and its weight.
func (v TileVariant) Choice() TileChoice {
	return TileChoice{Asset: v.Asset, Weight: v.Weight}
}

// TileSet is a named group of variants resolved by one Algorithm.
// A set with no variants is valid and never yields a choice.
type TileSet struct {
	ID        int
	Name      string
	Algorithm Algorithm
	Variants  []TileVariant
}

// Registry maps set ids to tile sets. It is not safe for concurrent use;
// hosts that mutate it while other goroutines query it must hold one lock
// around the whole registry.
type Registry struct {
	sets map[int]*TileSet
}

// NewRegistry creates an empty Registry. The zero value is also ready to use.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[int]*TileSet)}
}

// CreateSet registers a new empty set under id. An existing set with the same
// id is replaced, including its variants.
func (r *Registry) CreateSet(id int, name string, alg Algorithm) {
	if r.sets == nil {
		r.sets = make(map[int]*TileSet)
	}
	r.sets[id] = &TileSet{ID: id, Name: name, Algorithm: alg}
}

// AddVariant appends a variant with DefaultWeight. Unknown ids are ignored.
func (r *Registry) AddVariant(id int, asset AssetRef, typ TileType, connections ConnectionMask) {
	r.AddWeightedVariant(id, asset, typ, connections, DefaultWeight)
}

// AddWeightedVariant appends a variant with an explicit weight. Weights that
// are not positive finite numbers are replaced by DefaultWeight. Unknown ids
// are ignored.
func (r *Registry) AddWeightedVariant(id int, asset AssetRef, typ TileType, connections ConnectionMask, weight float64) {
	set, ok := r.sets[id]
	if !ok {
		return
	}
	if !(weight > 0) || math.IsInf(weight, 0) {
		weight = DefaultWeight
	}
	set.Variants = append(set.Variants, TileVariant{
		Asset:       asset,
		Type:        typ,
		Connections: connections,
		Weight:      weight,
	})
}

// GetSet returns the set registered under id.
func (r *Registry) GetSet(id int) (*TileSet, bool) {
	set, ok := r.sets[id]
	return set, ok
}

// IDs returns the registered set ids in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.sets))
	for id := range r.sets {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of registered sets.
func (r *Registry) Len() int { return len(r.sets) }
