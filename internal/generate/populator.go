package generate

import "tilesmith/internal/gamemap"

// Decorate scatters up to cfg.DecorCount rectangular blobs of cfg.DecorGroup
// inside the map's rooms. Blobs may overlap each other; each one stays inside
// its room. It returns the rectangles painted.
func Decorate(gmap *gamemap.GameMap, cfg *Config) []gamemap.Rect {
	if cfg.DecorGroup == gamemap.NoGroup || cfg.DecorCount <= 0 || len(gmap.Rooms) == 0 {
		return nil
	}
	maxSize := max(cfg.DecorMaxSize, 1)

	var blobs []gamemap.Rect
	for i := 0; i < cfg.DecorCount; i++ {
		room := gmap.Rooms[cfg.Rand.Intn(len(gmap.Rooms))]
		w := 1 + cfg.Rand.Intn(min(maxSize, room.X2-room.X1+1))
		h := 1 + cfg.Rand.Intn(min(maxSize, room.Y2-room.Y1+1))
		x, y := randomInRoom(shrink(room, w, h), cfg)
		blob := gamemap.Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
		gmap.Fill(blob, cfg.DecorGroup)
		blobs = append(blobs, blob)
	}
	return blobs
}

// shrink returns the positions in room where a w×h blob can start.
func shrink(room gamemap.Rect, w, h int) gamemap.Rect {
	return gamemap.Rect{X1: room.X1, Y1: room.Y1, X2: room.X2 - w + 1, Y2: room.Y2 - h + 1}
}

// randomInRoom returns a random position within room (inclusive bounds).
func randomInRoom(room gamemap.Rect, cfg *Config) (int, int) {
	x := room.X1 + cfg.Rand.Intn(room.X2-room.X1+1)
	y := room.Y1 + cfg.Rand.Intn(room.Y2-room.Y1+1)
	return x, y
}
