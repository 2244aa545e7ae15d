package recordcore

import (
	"sort"
	"sync"
	"testing"

	"github.com/moviegraph/moviegraph/internal/record"
)

func setupTestCore(t *testing.T) *Core {
	t.Helper()
	seed, err := record.DefaultSeed()
	if err != nil {
		t.Fatalf("failed to load default seed: %v", err)
	}
	return New(seed)
}

func movieNames(movies []*record.Movie) []string {
	names := make([]string, len(movies))
	for i, m := range movies {
		names[i] = m.Name
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	t.Run("nil seed", func(t *testing.T) {
		core := New(nil)
		movies, actors := core.Counts()
		if movies != 0 || actors != 0 {
			t.Errorf("Counts() = %d, %d, want 0, 0", movies, actors)
		}
		if core.Movies() == nil {
			t.Error("Movies() returned nil, want empty slice")
		}
	})

	t.Run("copies seed records", func(t *testing.T) {
		seed := &record.Seed{
			Actors: []*record.Actor{{ID: 1, Name: "Actor A"}},
			Movies: []*record.Movie{{ID: 1, Name: "Movie A", ActorID: 1}},
		}
		core := New(seed)
		seed.Movies[0].Name = "changed"

		m, ok := core.Movie(1)
		if !ok {
			t.Fatal("Movie(1) not found")
		}
		if m.Name != "Movie A" {
			t.Errorf("Movie(1).Name = %q, want %q", m.Name, "Movie A")
		}
	})
}

func TestMovie(t *testing.T) {
	core := setupTestCore(t)

	t.Run("found", func(t *testing.T) {
		m, ok := core.Movie(2)
		if !ok {
			t.Fatal("Movie(2) not found")
		}
		if m.Name != "Movie B" {
			t.Errorf("Name = %q, want %q", m.Name, "Movie B")
		}
	})

	t.Run("not found", func(t *testing.T) {
		m, ok := core.Movie(999)
		if ok || m != nil {
			t.Errorf("Movie(999) = %v, %v, want nil, false", m, ok)
		}
	})
}

func TestFirstMatchWins(t *testing.T) {
	core := New(&record.Seed{
		Actors: []*record.Actor{{ID: 1, Name: "First"}, {ID: 1, Name: "Second"}},
	})

	a, ok := core.Actor(1)
	if !ok {
		t.Fatal("Actor(1) not found")
	}
	if a.Name != "First" {
		t.Errorf("Actor(1).Name = %q, want %q", a.Name, "First")
	}
}

func TestListsAreIdempotentSnapshots(t *testing.T) {
	core := setupTestCore(t)

	first := core.Movies()
	second := core.Movies()
	if !equalStrings(movieNames(first), movieNames(second)) {
		t.Errorf("Movies() not idempotent: %v vs %v", movieNames(first), movieNames(second))
	}

	// Mutating the returned slice must not reach the store
	first[0] = &record.Movie{ID: 100, Name: "Intruder"}
	if got := core.Movies()[0].Name; got != "Movie A" {
		t.Errorf("Movies()[0].Name = %q after caller mutation, want %q", got, "Movie A")
	}

	actors := core.Actors()
	actors[0] = nil
	if core.Actors()[0] == nil {
		t.Error("Actors()[0] = nil after caller mutation")
	}
}

func TestAddMovie(t *testing.T) {
	core := setupTestCore(t)

	before, _ := core.Counts()
	m := core.AddMovie("New Film", 1)

	if m.ID != before+1 {
		t.Errorf("ID = %d, want %d", m.ID, before+1)
	}
	if m.Name != "New Film" || m.ActorID != 1 {
		t.Errorf("AddMovie() = %+v, want name %q and actor 1", *m, "New Film")
	}

	after, _ := core.Counts()
	if after != before+1 {
		t.Errorf("movie count = %d, want %d", after, before+1)
	}

	movies := core.Movies()
	if last := movies[len(movies)-1]; last != m {
		t.Errorf("last movie = %+v, want the added movie", *last)
	}
}

func TestAddMovieDanglingActor(t *testing.T) {
	core := setupTestCore(t)

	m := core.AddMovie("Orphan", 42)
	if _, ok := core.ActorOf(m); ok {
		t.Error("ActorOf() found an actor for a dangling reference")
	}
}

func TestConcurrentAddMovie(t *testing.T) {
	core := New(nil)

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- core.AddMovie("Film", 1).ID
			_ = core.Movies()
		}()
	}
	wg.Wait()
	close(ids)

	var got []int
	for id := range ids {
		got = append(got, id)
	}
	sort.Ints(got)

	for i, id := range got {
		if id != i+1 {
			t.Fatalf("ids = %v, want 1..%d without gaps or duplicates", got, n)
		}
	}
}
