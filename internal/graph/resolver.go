package graph

import "github.com/moviegraph/moviegraph/internal/recordcore"

// Resolver is the root resolver for the GraphQL schema.
// It holds a reference to recordcore.Core for data access.
type Resolver struct {
	Core *recordcore.Core
}
