package generate

import "tilesmith/internal/gamemap"

// carveCorridor paints a tunnel between (x1,y1) and (x2,y2).
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	g := cfg.Group
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(gmap, x1, y1, x2, y2, g)
	case CorridorStraight:
		carveH(gmap, x1, x2, y1, g)
		carveV(gmap, y1, y2, x2, g)
	default: // LShaped
		if cfg.Rand.Intn(2) == 0 {
			carveH(gmap, x1, x2, y1, g)
			carveV(gmap, y1, y2, x2, g)
		} else {
			carveV(gmap, y1, y2, x1, g)
			carveH(gmap, x1, x2, y2, g)
		}
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y, group int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	gmap.Fill(gamemap.Rect{X1: x1, Y1: y, X2: x2, Y2: y}, group)
}

func carveV(gmap *gamemap.GameMap, y1, y2, x, group int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	gmap.Fill(gamemap.Rect{X1: x, Y1: y1, X2: x, Y2: y2}, group)
}

func carveZShaped(gmap *gamemap.GameMap, x1, y1, x2, y2, group int) {
	midY := (y1 + y2) / 2
	carveV(gmap, y1, midY, x1, group)
	carveH(gmap, x1, x2, midY, group)
	carveV(gmap, midY, y2, x2, group)
}
