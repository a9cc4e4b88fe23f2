package world

import "testing"

func mustParse(t *testing.T, rows []string) *Layout {
	t.Helper()
	l, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	return l
}

func TestFindPathShortest(t *testing.T) {
	l := mustParse(t, []string{
		"#######",
		"#.....#",
		"#.###.#",
		"#.....#",
		"#######",
	})

	path, ok := FindPath(l, Pt(1, 1), Pt(5, 3))
	if !ok {
		t.Fatal("expected a path")
	}
	if len(path) != 7 {
		t.Fatalf("path length = %d, want 7: %v", len(path), path)
	}
	if path[0] != Pt(1, 1) || path[len(path)-1] != Pt(5, 3) {
		t.Errorf("path endpoints = %v..%v", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if path[i].Manhattan(path[i-1]) != 1 {
			t.Errorf("step %d is not orthogonal: %v -> %v", i, path[i-1], path[i])
		}
		if !l.IsFloor(path[i]) {
			t.Errorf("step %d on wall: %v", i, path[i])
		}
	}
}

func TestFindPathDeterministicTieBreak(t *testing.T) {
	l := mustParse(t, []string{
		"#######",
		"#.....#",
		"#.###.#",
		"#.....#",
		"#######",
	})
	a, _ := FindPath(l, Pt(1, 1), Pt(5, 3))
	b, _ := FindPath(l, Pt(1, 1), Pt(5, 3))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d differs: %v != %v", i, a[i], b[i])
		}
	}
}

func TestShortestPathFallback(t *testing.T) {
	l := mustParse(t, []string{
		"#####",
		"#.#.#",
		"#####",
	})

	if _, ok := FindPath(l, Pt(1, 1), Pt(3, 1)); ok {
		t.Fatal("expected no path across a wall")
	}
	path := ShortestPath(l, Pt(1, 1), Pt(3, 1))
	if len(path) != 2 || path[0] != Pt(1, 1) || path[1] != Pt(3, 1) {
		t.Fatalf("fallback = %v, want [(1,1) (3,1)]", path)
	}
}

func TestFindPathSameCell(t *testing.T) {
	l := mustParse(t, []string{
		"###",
		"#.#",
		"###",
	})
	path, ok := FindPath(l, Pt(1, 1), Pt(1, 1))
	if !ok || len(path) != 1 {
		t.Fatalf("FindPath to self = %v, %v", path, ok)
	}
}

func TestDeadEnds(t *testing.T) {
	l := mustParse(t, []string{
		"#######",
		"#...#.#",
		"#.#.#.#",
		"#.#...#",
		"#######",
	})

	got := DeadEnds(l)
	want := []Point{Pt(5, 1), Pt(1, 3)}
	if len(got) != len(want) {
		t.Fatalf("DeadEnds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DeadEnds[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDeadEndsIgnoreBorder(t *testing.T) {
	l := mustParse(t, []string{
		"#.###",
		"#...#",
		"#####",
	})
	for _, p := range DeadEnds(l) {
		if l.IsBorder(p) {
			t.Errorf("border cell %v reported as dead end", p)
		}
	}
}

func TestNearestFloor(t *testing.T) {
	l := mustParse(t, []string{
		"#####",
		"#...#",
		"###.#",
		"#####",
	})

	tests := []struct {
		in, want Point
	}{
		{Pt(2, 1), Pt(2, 1)},
		{Pt(2, 2), Pt(2, 1)},
		{Pt(3, 3), Pt(3, 2)},
		{Pt(-4, 1), Pt(1, 1)},
	}
	for _, tt := range tests {
		if got := NearestFloor(l, tt.in); got != tt.want {
			t.Errorf("NearestFloor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"###", "##"}},
		{"unknown tile", []string{"#x#"}},
	}
	for _, tt := range tests {
		if _, err := ParseLayout(tt.rows); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#.#.#",
		"#...#",
		"#####",
	}
	l := mustParse(t, rows)
	got := l.Serialize()
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], rows[i])
		}
	}
}

func TestWaypoint(t *testing.T) {
	path := []Point{Pt(1, 1), Pt(2, 1), Pt(3, 1), Pt(4, 1), Pt(5, 1)}
	tests := []struct {
		fraction float64
		want     Point
	}{
		{0, Pt(1, 1)},
		{0.2, Pt(1, 1)},
		{0.25, Pt(2, 1)},
		{0.5, Pt(3, 1)},
		{0.9, Pt(4, 1)},
		{1, Pt(5, 1)},
		{1.7, Pt(5, 1)},
		{-1, Pt(1, 1)},
	}
	for _, tt := range tests {
		if got := Waypoint(path, tt.fraction); got != tt.want {
			t.Errorf("Waypoint(%v) = %v, want %v", tt.fraction, got, tt.want)
		}
	}
	if got := Waypoint(nil, 0.5); got != (Point{}) {
		t.Errorf("Waypoint(nil) = %v, want zero", got)
	}
}
