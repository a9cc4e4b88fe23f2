package artifact

import (
	"testing"

	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/rng"
	"github.com/samdwyer/runevault/internal/world"
)

func carved(t *testing.T, seed int64, size int) (*world.Layout, []world.Point) {
	t.Helper()
	start, exit := world.Pt(1, 1), world.Pt(size-2, size-2)
	l := world.Carve(size, size, start, exit, rng.New(seed))
	path, ok := world.FindPath(l, start, exit)
	if !ok {
		t.Fatalf("seed %d: no path", seed)
	}
	return l, path
}

func TestPlaceSixArtifacts(t *testing.T) {
	l, path := carved(t, 1337, 17)
	catalog := gamedata.MustLoadArtifacts()
	got := Place(l, path, path[0], path[len(path)-1], catalog)

	if len(got) != 6 {
		t.Fatalf("Place returned %d artifacts, want 6", len(got))
	}
	for i, a := range got {
		if a.ID != catalog.Templates[i].ID {
			t.Errorf("artifact %d id = %q, want %q", i, a.ID, catalog.Templates[i].ID)
		}
		if !l.IsFloor(a.Position) {
			t.Errorf("artifact %q on wall at %v", a.ID, a.Position)
		}
		if a.RewardUnits != catalog.RewardUnits(a.Rarity) {
			t.Errorf("artifact %q reward = %d, want %d", a.ID, a.RewardUnits, catalog.RewardUnits(a.Rarity))
		}
		if a.Symbol != catalog.Symbol(a.Theme, a.Rarity, i) {
			t.Errorf("artifact %q symbol = %q", a.ID, a.Symbol)
		}
		if a.Symbol == "" {
			t.Errorf("artifact %q has no symbol", a.ID)
		}
	}
}

func TestCandidatesDistinctAndBounded(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		l, path := carved(t, seed, 21)
		start, exit := path[0], path[len(path)-1]
		cands := Candidates(l, path, start, exit)

		if len(cands) == 0 || len(cands) > MaxCandidates {
			t.Fatalf("seed %d: %d candidates", seed, len(cands))
		}
		seen := make(map[world.Point]bool)
		for _, p := range cands {
			if seen[p] {
				t.Errorf("seed %d: duplicate candidate %v", seed, p)
			}
			seen[p] = true
			if p == start || p == exit {
				t.Errorf("seed %d: candidate on endpoint %v", seed, p)
			}
		}
	}
}

func TestCandidatesPreferDeadEnds(t *testing.T) {
	l, path := carved(t, 5, 17)
	ends := world.DeadEnds(l)
	cands := Candidates(l, path, path[0], path[len(path)-1])

	i := 0
	for _, p := range ends {
		if p == path[0] || p == path[len(path)-1] {
			continue
		}
		if i == len(cands) {
			break
		}
		if cands[i] != p {
			t.Fatalf("candidate %d = %v, want dead end %v", i, cands[i], p)
		}
		i++
	}
}

func TestPlaceReusesLastCandidate(t *testing.T) {
	// A straight corridor has no interior dead ends; only waypoints remain.
	l, err := world.ParseLayout([]string{
		"#########",
		"#.......#",
		"#########",
	})
	if err != nil {
		t.Fatal(err)
	}
	start, exit := world.Pt(1, 1), world.Pt(7, 1)
	path, _ := world.FindPath(l, start, exit)

	cands := Candidates(l, path, start, exit)
	if len(cands) >= 6 {
		t.Fatalf("expected fewer than 6 candidates, got %v", cands)
	}

	got := Place(l, path, start, exit, gamedata.MustLoadArtifacts())
	last := cands[len(cands)-1]
	for i := len(cands); i < len(got); i++ {
		if got[i].Position != last {
			t.Errorf("artifact %d at %v, want reused %v", i, got[i].Position, last)
		}
	}
}

func TestPlaceFallsBackToExit(t *testing.T) {
	l, err := world.ParseLayout([]string{
		"####",
		"#..#",
		"####",
	})
	if err != nil {
		t.Fatal(err)
	}
	start, exit := world.Pt(1, 1), world.Pt(2, 1)
	got := Place(l, []world.Point{start, exit}, start, exit, gamedata.MustLoadArtifacts())
	for _, a := range got {
		if a.Position != exit {
			t.Fatalf("artifact %q at %v, want exit %v", a.ID, a.Position, exit)
		}
	}
}

func TestPlaceIsDeterministic(t *testing.T) {
	l1, p1 := carved(t, 2024, 19)
	l2, p2 := carved(t, 2024, 19)
	a := Place(l1, p1, p1[0], p1[len(p1)-1], gamedata.MustLoadArtifacts())
	b := Place(l2, p2, p2[0], p2[len(p2)-1], gamedata.MustLoadArtifacts())
	for i := range a {
		if a[i].Position != b[i].Position || a[i].Symbol != b[i].Symbol {
			t.Errorf("artifact %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGated(t *testing.T) {
	l, path := carved(t, 1337, 17)
	got := Place(l, path, path[0], path[len(path)-1], gamedata.MustLoadArtifacts())

	gated := 0
	for _, a := range got {
		if a.Gated() {
			gated++
		}
	}
	if gated != 3 {
		t.Errorf("gated artifacts = %d, want 3", gated)
	}
}
