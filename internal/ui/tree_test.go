package ui

import (
	"strings"
	"testing"

	"github.com/moviegraph/moviegraph/internal/record"
	"github.com/moviegraph/moviegraph/internal/recordcore"
)

func setupTestCore(t *testing.T) *recordcore.Core {
	t.Helper()
	seed, err := record.DefaultSeed()
	if err != nil {
		t.Fatalf("failed to load default seed: %v", err)
	}
	return recordcore.New(seed)
}

func TestBuildTree(t *testing.T) {
	core := setupTestCore(t)

	nodes := BuildTree(core)
	if len(nodes) != 3 {
		t.Fatalf("len(nodes) = %d, want 3", len(nodes))
	}

	wantCounts := []int{1, 2, 0}
	for i, n := range nodes {
		if n.Actor == nil {
			t.Fatalf("nodes[%d].Actor = nil", i)
		}
		if len(n.Movies) != wantCounts[i] {
			t.Errorf("nodes[%d] has %d movies, want %d", i, len(n.Movies), wantCounts[i])
		}
	}
}

func TestBuildTreeDangling(t *testing.T) {
	core := setupTestCore(t)
	core.AddMovie("Orphan", 42)

	nodes := BuildTree(core)
	if len(nodes) != 4 {
		t.Fatalf("len(nodes) = %d, want 4", len(nodes))
	}

	last := nodes[len(nodes)-1]
	if last.Actor != nil {
		t.Errorf("last node actor = %+v, want nil", *last.Actor)
	}
	if len(last.Movies) != 1 || last.Movies[0].Name != "Orphan" {
		t.Errorf("last node movies = %+v, want [Orphan]", last.Movies)
	}

	if js := last.ToJSON(); js.ID != nil {
		t.Errorf("ToJSON().ID = %d, want nil", *js.ID)
	}
	if js := nodes[0].ToJSON(); js.ID == nil || *js.ID != 1 || js.Name != "Actor A" {
		t.Errorf("ToJSON() = %+v, want actor 1", js)
	}
}

func TestRenderTree(t *testing.T) {
	core := setupTestCore(t)
	core.AddMovie("Orphan", 42)

	out := RenderTree(BuildTree(core))

	for _, want := range []string{
		"Actor A", "Actor B", "Actor C",
		"Movie A", "Movie B", "Movie C",
		"Unknown actor", "Orphan", "(actor 42)",
		"1 movie", "2 movies", "0 movies",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTree() missing %q in:\n%s", want, out)
		}
	}

	// Movie B comes before Movie C under Actor B
	if strings.Index(out, "Movie B") > strings.Index(out, "Movie C") {
		t.Error("movies rendered out of insertion order")
	}
}

func TestRenderCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 movies"},
		{1, "1 movie"},
		{5, "5 movies"},
	}
	for _, tt := range tests {
		if got := RenderCount(tt.n, "movie"); !strings.Contains(got, tt.want) {
			t.Errorf("RenderCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
