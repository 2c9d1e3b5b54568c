package generate

import (
	"math/rand"
	"testing"
)

func defaultTestConfig(seed int64) *Config {
	cfg := DefaultConfig(rand.New(rand.NewSource(seed)))
	cfg.Group = 1
	return cfg
}

// TestGenerateAllRoomsConnected verifies that every painted cell is reachable
// from the first painted cell via BFS (flood-fill).
func TestGenerateAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := defaultTestConfig(seed)
		gmap := Generate(cfg)

		startX, startY := -1, -1
		for y := 0; y < gmap.Height && startY == -1; y++ {
			for x := 0; x < gmap.Width && startX == -1; x++ {
				if gmap.GroupAt(x, y) == cfg.Group {
					startX, startY = x, y
				}
			}
		}
		if startX == -1 {
			t.Fatalf("seed=%d: no painted cells found", seed)
		}

		visited := make([][]bool, gmap.Height)
		for y := range visited {
			visited[y] = make([]bool, gmap.Width)
		}
		queue := [][2]int{{startX, startY}}
		visited[startY][startX] = true

		dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range dirs {
				nx, ny := cur[0]+d[0], cur[1]+d[1]
				if !gmap.InBounds(nx, ny) || visited[ny][nx] {
					continue
				}
				if gmap.GroupAt(nx, ny) == cfg.Group {
					visited[ny][nx] = true
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}

		for y := 0; y < gmap.Height; y++ {
			for x := 0; x < gmap.Width; x++ {
				if gmap.GroupAt(x, y) == cfg.Group && !visited[y][x] {
					t.Errorf("seed=%d: unreachable cell at (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

// TestGenerateRoomsDoNotOverlap verifies that no two rooms share interior cells.
func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := defaultTestConfig(seed)
		gmap := Generate(cfg)

		rooms := gmap.Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v",
						seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

// TestGenerateLeavesBorderUnpainted keeps the outermost ring empty so every
// painted region has an outline for the auto-tiler to find.
func TestGenerateLeavesBorderUnpainted(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap := Generate(defaultTestConfig(seed))
		for x := 0; x < gmap.Width; x++ {
			if !gmap.At(x, 0).Empty() || !gmap.At(x, gmap.Height-1).Empty() {
				t.Errorf("seed=%d: border cell painted in column %d", seed, x)
			}
		}
		for y := 0; y < gmap.Height; y++ {
			if !gmap.At(0, y).Empty() || !gmap.At(gmap.Width-1, y).Empty() {
				t.Errorf("seed=%d: border cell painted in row %d", seed, y)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(defaultTestConfig(99))
	b := Generate(defaultTestConfig(99))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.GroupAt(x, y) != b.GroupAt(x, y) {
				t.Fatalf("same seed produced different maps at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateWithDecor(t *testing.T) {
	cfg := defaultTestConfig(5)
	cfg.DecorGroup = 2
	cfg.DecorCount = 4
	cfg.DecorMaxSize = 2
	gmap := Generate(cfg)
	if gmap.Count(2) == 0 {
		t.Error("expected decoration cells")
	}
	if gmap.Count(1) == 0 {
		t.Error("expected room cells")
	}
}
