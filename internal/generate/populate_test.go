package generate

import (
	"math/rand"
	"testing"

	"tilesmith/internal/gamemap"
)

// makeRoomedMap builds a GameMap painted with the given number of rooms.
func makeRoomedMap(rooms int) *gamemap.GameMap {
	gmap := gamemap.New(80, 40)
	for i := 0; i < rooms; i++ {
		x := 2 + i*10
		r := gamemap.Rect{X1: x, Y1: 2, X2: x + 6, Y2: 8}
		gmap.Rooms = append(gmap.Rooms, r)
		gmap.Fill(r, 1)
	}
	return gmap
}

func makeDecorConfig(count, size int, seed int64) *Config {
	return &Config{
		Group:        1,
		DecorGroup:   2,
		DecorCount:   count,
		DecorMaxSize: size,
		Rand:         rand.New(rand.NewSource(seed)),
	}
}

func TestDecorateNoop(t *testing.T) {
	cases := []struct {
		name  string
		rooms int
		cfg   *Config
	}{
		{"no rooms", 0, makeDecorConfig(5, 2, 1)},
		{"zero count", 3, makeDecorConfig(0, 2, 1)},
		{"no decor group", 3, &Config{Group: 1, DecorCount: 5, Rand: rand.New(rand.NewSource(1))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := makeRoomedMap(tc.rooms)
			if blobs := Decorate(gmap, tc.cfg); len(blobs) != 0 {
				t.Errorf("expected no blobs, got %d", len(blobs))
			}
			if n := gmap.Count(2); n != 0 {
				t.Errorf("expected no decor cells, got %d", n)
			}
		})
	}
}

func TestDecorateBlobsStayInRooms(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		gmap := makeRoomedMap(4)
		cfg := makeDecorConfig(6, 3, seed)
		blobs := Decorate(gmap, cfg)
		if len(blobs) != 6 {
			t.Fatalf("seed=%d: got %d blobs, want 6", seed, len(blobs))
		}
		for _, b := range blobs {
			if b.X2-b.X1+1 > 3 || b.Y2-b.Y1+1 > 3 {
				t.Errorf("seed=%d: blob %v exceeds max size 3", seed, b)
			}
			inside := false
			for _, r := range gmap.Rooms {
				if b.X1 >= r.X1 && b.X2 <= r.X2 && b.Y1 >= r.Y1 && b.Y2 <= r.Y2 {
					inside = true
					break
				}
			}
			if !inside {
				t.Errorf("seed=%d: blob %v is not inside any room", seed, b)
			}
		}
		if gmap.Count(2) == 0 {
			t.Errorf("seed=%d: expected decor cells to be painted", seed)
		}
	}
}

func TestRandomInRoom(t *testing.T) {
	cfg := &Config{Rand: rand.New(rand.NewSource(3))}
	room := gamemap.Rect{X1: 4, Y1: 5, X2: 6, Y2: 5}
	for i := 0; i < 100; i++ {
		x, y := randomInRoom(room, cfg)
		if x < 4 || x > 6 || y != 5 {
			t.Fatalf("randomInRoom returned (%d,%d) outside %v", x, y, room)
		}
	}
}
