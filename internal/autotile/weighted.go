package autotile

import "math/rand"

// WeightedPick chooses one candidate with probability proportional to its
// weight. A single candidate is returned without drawing from rng. If
// floating-point drift exhausts the walk, the last candidate wins.
func WeightedPick(rng *rand.Rand, candidates []TileChoice) (TileChoice, bool) {
	switch len(candidates) {
	case 0:
		return TileChoice{}, false
	case 1:
		return candidates[0], true
	}
	total := 0.0
	for _, c := range candidates {
		total += c.Weight
	}
	r := rng.Float64() * total
	for _, c := range candidates {
		r -= c.Weight
		if r <= 0 {
			return c, true
		}
	}
	return candidates[len(candidates)-1], true
}
