// Package recordcore provides a thread-safe in-memory store for movies and
// actors, along with the lookups that connect the two collections.
package recordcore

import (
	"sync"

	"github.com/moviegraph/moviegraph/internal/record"
)

// Core owns the movie and actor collections. Both keep insertion order.
// Records are never modified once stored, so callers may share the
// pointers handed out by Core.
type Core struct {
	mu     sync.RWMutex
	movies []*record.Movie
	actors []*record.Actor
}

// New creates a Core populated from the given seed. A nil seed yields an
// empty store.
func New(seed *record.Seed) *Core {
	c := &Core{
		movies: []*record.Movie{},
		actors: []*record.Actor{},
	}
	if seed == nil {
		return c
	}

	for _, m := range seed.Movies {
		movie := *m
		c.movies = append(c.movies, &movie)
	}
	for _, a := range seed.Actors {
		actor := *a
		c.actors = append(c.actors, &actor)
	}
	return c
}

// Movie finds a movie by ID. The first match wins.
func (c *Core) Movie(id int) (*record.Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.movies {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// Actor finds an actor by ID. The first match wins.
func (c *Core) Actor(id int) (*record.Actor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.findActor(id)
}

// findActor must be called with the lock held.
func (c *Core) findActor(id int) (*record.Actor, bool) {
	for _, a := range c.actors {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Movies returns a snapshot of all movies in insertion order.
func (c *Core) Movies() []*record.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*record.Movie, len(c.movies))
	copy(result, c.movies)
	return result
}

// Actors returns a snapshot of all actors in insertion order.
func (c *Core) Actors() []*record.Actor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*record.Actor, len(c.actors))
	copy(result, c.actors)
	return result
}

// Counts returns the number of stored movies and actors.
func (c *Core) Counts() (movies, actors int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.movies), len(c.actors)
}

// AddMovie appends a new movie and returns it. The ID is the movie count
// plus one. actorID is stored as given, even if no such actor exists.
func (c *Core) AddMovie(name string, actorID int) *record.Movie {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := &record.Movie{
		ID:      len(c.movies) + 1,
		Name:    name,
		ActorID: actorID,
	}
	c.movies = append(c.movies, m)
	return m
}
