package graph

import "github.com/moviegraph/moviegraph/internal/record"

type movieResolver struct {
	root *Resolver
	m    *record.Movie
}

func (r *movieResolver) ID() int32      { return int32(r.m.ID) }
func (r *movieResolver) Name() string   { return r.m.Name }
func (r *movieResolver) ActorID() int32 { return int32(r.m.ActorID) }

// Actor is null when the movie's actorId dangles.
func (r *movieResolver) Actor() *actorResolver {
	a, ok := r.root.Core.ActorOf(r.m)
	if !ok {
		return nil
	}
	return r.root.actor(a)
}

type actorResolver struct {
	root *Resolver
	a    *record.Actor
}

func (r *actorResolver) ID() int32    { return int32(r.a.ID) }
func (r *actorResolver) Name() string { return r.a.Name }

func (r *actorResolver) Movies() *[]*movieResolver {
	return r.root.movieList(r.root.Core.MoviesOf(r.a))
}
