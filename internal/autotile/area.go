package autotile

import (
	"log/slog"
	"math/rand"
	"time"
)

// Rect is the half-open area [Left,Right) x [Top,Bottom).
type Rect struct {
	Left, Top, Right, Bottom int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Engine resolves cells against a registry. It owns no grid: neighbour state
// comes from the NeighborFunc passed to each call.
type Engine struct {
	Registry *Registry
	Rules    *RuleTable
	Rand     *rand.Rand
	logger   *slog.Logger
}

// NewEngine wires an Engine. Nil arguments get defaults: an empty registry,
// DefaultRules, a clock-seeded generator and slog.Default.
func NewEngine(reg *Registry, rules *RuleTable, rng *rand.Rand, logger *slog.Logger) *Engine {
	if reg == nil {
		reg = NewRegistry()
	}
	if rules == nil {
		rules = DefaultRules()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{Registry: reg, Rules: rules, Rand: rng, logger: logger}
}

// Select resolves mask for the set registered under setID. Unknown sets
// yield no choice.
func (e *Engine) Select(setID int, mask ConnectionMask) (TileChoice, bool) {
	set, ok := e.Registry.GetSet(setID)
	if !ok {
		return TileChoice{}, false
	}
	return Select(set, mask, e.Rules, e.Rand)
}

// Resolve computes the mask at pos and selects a choice for it. It does not
// check whether pos itself belongs to the group.
func (e *Engine) Resolve(setID int, pos Position, isSameGroup NeighborFunc) (TileChoice, bool) {
	return e.Select(setID, ComputeMask(pos, isSameGroup))
}

// ApplyToArea resolves every in-group cell of area, row by row. Cells with
// no choice are left out of the result. Every mask is computed from the
// predicate's answers as they stand; choices made earlier in the same call
// are not fed back.
func (e *Engine) ApplyToArea(setID int, area Rect, isSameGroup NeighborFunc) map[Position]TileChoice {
	out := make(map[Position]TileChoice)
	set, ok := e.Registry.GetSet(setID)
	if !ok {
		e.logger.Debug("apply to area: unknown tile set", "set", setID)
		return out
	}
	if area.Empty() {
		return out
	}
	for y := area.Top; y < area.Bottom; y++ {
		for x := area.Left; x < area.Right; x++ {
			pos := Position{X: x, Y: y}
			if !isSameGroup(pos) {
				continue
			}
			if c, ok := Select(set, ComputeMask(pos, isSameGroup), e.Rules, e.Rand); ok {
				out[pos] = c
			}
		}
	}
	e.logger.Debug("apply to area",
		"set", setID,
		"algorithm", set.Algorithm.String(),
		"area", area,
		"placed", len(out),
	)
	return out
}
