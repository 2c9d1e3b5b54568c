package autotile

import (
	"fmt"
	"math/rand"
	"strings"
)

// Algorithm selects how a TileSet turns a mask into a choice.
type Algorithm uint8

const (
	Simple Algorithm = iota
	Wang2Corner
	Wang4Corner
	Blob
	Platform
)

var algorithmNames = [...]string{
	Simple:      "simple",
	Wang2Corner: "wang2corner",
	Wang4Corner: "wang4corner",
	Blob:        "blob",
	Platform:    "platform",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "unknown"
}

// ParseAlgorithm is the inverse of Algorithm.String. Case, hyphens and
// underscores are ignored, so "Wang-2-Corner" parses.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return Simple, fmt.Errorf("unknown algorithm %q", s)
}

// Select resolves mask against set using the set's algorithm. ok is false
// when the set is nil or every fallback is exhausted. rng may be nil if no
// candidate pool can hold more than one entry.
func Select(set *TileSet, mask ConnectionMask, rules *RuleTable, rng *rand.Rand) (TileChoice, bool) {
	if set == nil {
		return TileChoice{}, false
	}
	switch set.Algorithm {
	case Wang2Corner:
		return selectWang2Corner(set, mask, rules, rng)
	case Wang4Corner:
		return selectWang4Corner(set, mask, rules, rng)
	case Blob:
		return selectBlob(set, mask, rules, rng)
	case Platform:
		return selectPlatform(set, mask, rules, rng)
	default:
		return selectSimple(set, mask, rules, rng)
	}
}

// Classify returns the tile type of the first rule matching mask.
func Classify(mask ConnectionMask, rules *RuleTable) (TileType, bool) {
	r, ok := rules.Match(mask)
	if !ok {
		return TileCenter, false
	}
	return r.Type, true
}

// selectSimple picks from the matched rule's choices, falling back to the
// first registered variant.
func selectSimple(set *TileSet, mask ConnectionMask, rules *RuleTable, rng *rand.Rand) (TileChoice, bool) {
	if len(set.Variants) == 0 {
		return TileChoice{}, false
	}
	if r, ok := rules.Match(mask); ok && len(r.Choices) > 0 {
		if c, ok := WeightedPick(rng, r.Choices); ok {
			return c, true
		}
	}
	return set.Variants[0].Choice(), true
}

// selectWang2Corner picks among variants whose stored connections are a
// subset of mask. With no survivors it behaves as Simple.
func selectWang2Corner(set *TileSet, mask ConnectionMask, rules *RuleTable, rng *rand.Rand) (TileChoice, bool) {
	var candidates []TileChoice
	for _, v := range set.Variants {
		if v.Connections.SubsetOf(mask) {
			candidates = append(candidates, v.Choice())
		}
	}
	if c, ok := WeightedPick(rng, candidates); ok {
		return c, true
	}
	return selectSimple(set, mask, rules, rng)
}

// selectWang4Corner currently shares Wang2Corner's subset matching.
// TODO: per-corner terrain matching belongs behind a new Algorithm value so
// existing sets keep their output.
func selectWang4Corner(set *TileSet, mask ConnectionMask, rules *RuleTable, rng *rand.Rand) (TileChoice, bool) {
	return selectWang2Corner(set, mask, rules, rng)
}

func selectBlob(set *TileSet, mask ConnectionMask, rules *RuleTable, rng *rand.Rand) (TileChoice, bool) {
	return selectSimple(set, mask, rules, rng)
}

func selectPlatform(set *TileSet, mask ConnectionMask, rules *RuleTable, rng *rand.Rand) (TileChoice, bool) {
	return selectSimple(set, mask, rules, rng)
}
