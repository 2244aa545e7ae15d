package graph

import "github.com/moviegraph/moviegraph/internal/record"

type idArgs struct {
	ID *int32
}

// Movie resolves Query.movie. A missing id or unknown movie yields null.
func (r *Resolver) Movie(args idArgs) *movieResolver {
	if args.ID == nil {
		return nil
	}
	m, ok := r.Core.Movie(int(*args.ID))
	if !ok {
		return nil
	}
	return r.movie(m)
}

// Movies resolves Query.movies.
func (r *Resolver) Movies() *[]*movieResolver {
	return r.movieList(r.Core.Movies())
}

// Actor resolves Query.actor. A missing id or unknown actor yields null.
func (r *Resolver) Actor(args idArgs) *actorResolver {
	if args.ID == nil {
		return nil
	}
	a, ok := r.Core.Actor(int(*args.ID))
	if !ok {
		return nil
	}
	return r.actor(a)
}

// Actors resolves Query.actors.
func (r *Resolver) Actors() *[]*actorResolver {
	actors := r.Core.Actors()
	result := make([]*actorResolver, len(actors))
	for i, a := range actors {
		result[i] = r.actor(a)
	}
	return &result
}

// AddMovie resolves Mutation.addMovie.
func (r *Resolver) AddMovie(args struct {
	Name    string
	ActorID int32
}) *movieResolver {
	return r.movie(r.Core.AddMovie(args.Name, int(args.ActorID)))
}

func (r *Resolver) movie(m *record.Movie) *movieResolver {
	return &movieResolver{root: r, m: m}
}

func (r *Resolver) actor(a *record.Actor) *actorResolver {
	return &actorResolver{root: r, a: a}
}

func (r *Resolver) movieList(movies []*record.Movie) *[]*movieResolver {
	result := make([]*movieResolver, len(movies))
	for i, m := range movies {
		result[i] = r.movie(m)
	}
	return &result
}
