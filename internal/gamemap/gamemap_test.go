package gamemap

import (
	"testing"

	"tilesmith/internal/autotile"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestPaintAndGroupAt(t *testing.T) {
	m := New(5, 5)
	if !m.At(2, 2).Empty() {
		t.Fatal("new map should be unpainted")
	}
	m.Paint(2, 2, 3)
	if got := m.GroupAt(2, 2); got != 3 {
		t.Errorf("GroupAt(2,2) = %d, want 3", got)
	}
	// out of bounds
	m.Paint(-1, 0, 3)
	if got := m.GroupAt(-1, 0); got != NoGroup {
		t.Errorf("GroupAt(-1,0) = %d, want NoGroup", got)
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}

func TestRectArea(t *testing.T) {
	got := Rect{X1: 1, Y1: 2, X2: 3, Y2: 2}.Area()
	want := autotile.Rect{Left: 1, Top: 2, Right: 4, Bottom: 3}
	if got != want {
		t.Errorf("Area() = %+v, want %+v", got, want)
	}
}

func TestFillClipsToMap(t *testing.T) {
	m := New(4, 4)
	m.Fill(Rect{X1: 2, Y1: 2, X2: 6, Y2: 6}, 1)
	if got := m.Count(1); got != 4 {
		t.Errorf("Count(1) = %d, want 4", got)
	}
}

func TestSameGroup(t *testing.T) {
	cases := []struct {
		name  string
		group int
		x, y  int
		want  bool
	}{
		{"painted same group", 1, 1, 1, true},
		{"painted other group", 2, 1, 1, false},
		{"unpainted cell", 1, 3, 3, false},
		{"NoGroup never matches", NoGroup, 3, 3, false},
		{"out-of-bounds x=-1", 1, -1, 1, false},
		{"out-of-bounds beyond height", 1, 1, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(5, 5)
			m.Paint(1, 1, 1)
			if got := m.SameGroup(tc.group)(autotile.Position{X: tc.x, Y: tc.y}); got != tc.want {
				t.Errorf("SameGroup(%d)(%d,%d) = %v; want %v", tc.group, tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestCommit(t *testing.T) {
	m := New(3, 3)
	m.Paint(0, 0, 1)
	choices := map[autotile.Position]autotile.TileChoice{
		{X: 0, Y: 0}: {Asset: autotile.AssetRef{Library: 1, Image: 4}, Weight: 1},
		{X: 9, Y: 9}: {Asset: autotile.AssetRef{Library: 1, Image: 5}, Weight: 1},
	}
	if n := m.Commit(choices); n != 1 {
		t.Fatalf("Commit stored %d choices, want 1", n)
	}
	c := m.At(0, 0)
	if !c.Placed || c.Asset != (autotile.AssetRef{Library: 1, Image: 4}) {
		t.Errorf("cell (0,0) = %+v, want placed asset 1:4", *c)
	}
	if c.Group != 1 {
		t.Errorf("Commit must not change the group; got %d", c.Group)
	}

	m.ClearAssets()
	if m.At(0, 0).Placed {
		t.Error("ClearAssets should unplace every cell")
	}
	if m.GroupAt(0, 0) != 1 {
		t.Error("ClearAssets should keep groups")
	}
}

// TestAutoTileRoundTrip drives the engine from map state and commits the
// result back, the way an editor session does.
func TestAutoTileRoundTrip(t *testing.T) {
	m := New(6, 4)
	m.Fill(Rect{X1: 1, Y1: 1, X2: 3, Y2: 2}, 7)

	reg := autotile.NewRegistry()
	reg.CreateSet(7, "Stone", autotile.Simple)
	reg.AddVariant(7, autotile.AssetRef{Library: 0, Image: 3}, autotile.TileCenter, autotile.None)
	eng := autotile.NewEngine(reg, nil, nil, nil)

	out := eng.ApplyToArea(7, m.Bounds(), m.SameGroup(7))
	if n := m.Commit(out); n != 6 {
		t.Fatalf("committed %d cells, want 6", n)
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.At(x, y)
			if c.Placed != (c.Group == 7) {
				t.Errorf("cell (%d,%d): placed=%v group=%d", x, y, c.Placed, c.Group)
			}
		}
	}
}
