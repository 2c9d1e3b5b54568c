package autotile

// AutoTileRule classifies a cardinal neighbour pattern. A mask matches when
// every Required bit is set and no Forbidden bit is.
type AutoTileRule struct {
	Name      string
	Type      TileType
	Required  ConnectionMask
	Forbidden ConnectionMask
	Choices   []TileChoice
}

// Matches reports whether the cardinal bits of mask satisfy the rule.
func (r AutoTileRule) Matches(mask ConnectionMask) bool {
	m := mask.Cardinal()
	return m&r.Required == r.Required && m&r.Forbidden == 0
}

// RuleTable is an ordered, read-only list of rules. The first matching rule
// wins, so order is part of the table's meaning.
type RuleTable struct {
	rules []AutoTileRule
}

// NewRuleTable copies rules into a new table.
func NewRuleTable(rules ...AutoTileRule) *RuleTable {
	t := &RuleTable{rules: make([]AutoTileRule, len(rules))}
	for i, r := range rules {
		r.Choices = append([]TileChoice(nil), r.Choices...)
		t.rules[i] = r
	}
	return t
}

// DefaultRules builds the canonical table: Center, the four edges, the four
// outer corners, then Single. None of the built-in rules carry choices.
func DefaultRules() *RuleTable {
	return NewRuleTable(
		AutoTileRule{Name: "Center", Type: TileCenter, Required: N | E | S | W},
		AutoTileRule{Name: "Edge-North", Type: TileEdgeN, Required: E | S | W, Forbidden: N},
		AutoTileRule{Name: "Edge-South", Type: TileEdgeS, Required: N | E | W, Forbidden: S},
		AutoTileRule{Name: "Edge-East", Type: TileEdgeE, Required: N | S | W, Forbidden: E},
		AutoTileRule{Name: "Edge-West", Type: TileEdgeW, Required: N | E | S, Forbidden: W},
		AutoTileRule{Name: "Corner-NE", Type: TileCornerNE, Required: S | W, Forbidden: N | E},
		AutoTileRule{Name: "Corner-NW", Type: TileCornerNW, Required: S | E, Forbidden: N | W},
		AutoTileRule{Name: "Corner-SE", Type: TileCornerSE, Required: N | W, Forbidden: S | E},
		AutoTileRule{Name: "Corner-SW", Type: TileCornerSW, Required: N | E, Forbidden: S | W},
		AutoTileRule{Name: "Single", Type: TileSingle, Forbidden: Cardinal},
	)
}

// Match returns the first rule matching mask.
func (t *RuleTable) Match(mask ConnectionMask) (AutoTileRule, bool) {
	if t == nil {
		return AutoTileRule{}, false
	}
	for _, r := range t.rules {
		if r.Matches(mask) {
			return r, true
		}
	}
	return AutoTileRule{}, false
}

// Rules returns a copy of the table's rules in evaluation order.
func (t *RuleTable) Rules() []AutoTileRule {
	if t == nil {
		return nil
	}
	return append([]AutoTileRule(nil), t.rules...)
}

// Len returns the number of rules.
func (t *RuleTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}
