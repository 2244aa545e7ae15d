package recordcore

import "github.com/moviegraph/moviegraph/internal/record"

// ActorOf returns the actor a movie points at. It reports false when the
// movie's ActorID dangles.
func (c *Core) ActorOf(m *record.Movie) (*record.Actor, bool) {
	if m == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.findActor(m.ActorID)
}

// MoviesOf returns the movies starring the given actor, in insertion order.
// The result is empty, never nil, when the actor has no movies.
func (c *Core) MoviesOf(a *record.Actor) []*record.Movie {
	result := []*record.Movie{}
	if a == nil {
		return result
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.movies {
		if m.ActorID == a.ID {
			result = append(result, m)
		}
	}
	return result
}

// Dangling returns the movies whose ActorID matches no actor.
func (c *Core) Dangling() []*record.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*record.Movie
	for _, m := range c.movies {
		if _, ok := c.findActor(m.ActorID); !ok {
			result = append(result, m)
		}
	}
	return result
}
