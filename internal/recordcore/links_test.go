package recordcore

import (
	"testing"

	"github.com/moviegraph/moviegraph/internal/record"
)

func TestActorOf(t *testing.T) {
	core := setupTestCore(t)

	tests := []struct {
		name    string
		movie   *record.Movie
		wantOK  bool
		wantAct string
	}{
		{"linked", &record.Movie{ID: 1, ActorID: 1}, true, "Actor A"},
		{"dangling", &record.Movie{ID: 9, ActorID: 999}, false, ""},
		{"nil movie", nil, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := core.ActorOf(tt.movie)
			if ok != tt.wantOK {
				t.Fatalf("ActorOf() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && a.Name != tt.wantAct {
				t.Errorf("ActorOf().Name = %q, want %q", a.Name, tt.wantAct)
			}
			if !ok && a != nil {
				t.Errorf("ActorOf() = %+v, want nil", *a)
			}
		})
	}
}

func TestMoviesOf(t *testing.T) {
	core := setupTestCore(t)
	core.AddMovie("Movie D", 1)

	tests := []struct {
		actorID int
		want    []string
	}{
		{1, []string{"Movie A", "Movie D"}},
		{2, []string{"Movie B", "Movie C"}},
		{3, []string{}},
		{999, []string{}},
	}

	for _, tt := range tests {
		a := &record.Actor{ID: tt.actorID}
		got := core.MoviesOf(a)
		if got == nil {
			t.Errorf("MoviesOf(%d) = nil, want empty slice", tt.actorID)
			continue
		}
		if !equalStrings(movieNames(got), tt.want) {
			t.Errorf("MoviesOf(%d) = %v, want %v", tt.actorID, movieNames(got), tt.want)
		}
	}
}

// Every stored movie belongs to exactly the actor MoviesOf files it under.
func TestMoviesOfPartitionsLinkedMovies(t *testing.T) {
	core := setupTestCore(t)
	core.AddMovie("Orphan", 77)

	seen := 0
	for _, a := range core.Actors() {
		for _, m := range core.MoviesOf(a) {
			if m.ActorID != a.ID {
				t.Errorf("MoviesOf(%d) returned %q with actor %d", a.ID, m.Name, m.ActorID)
			}
			seen++
		}
	}

	dangling := core.Dangling()
	total, _ := core.Counts()
	if seen+len(dangling) != total {
		t.Errorf("linked %d + dangling %d != total %d", seen, len(dangling), total)
	}
	if len(dangling) != 1 || dangling[0].Name != "Orphan" {
		t.Errorf("Dangling() = %v, want [Orphan]", movieNames(dangling))
	}
}
