package graph

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"go.uber.org/zap"

	"github.com/moviegraph/moviegraph/internal/logging"
	"github.com/moviegraph/moviegraph/internal/recordcore"
)

//go:embed schema.graphqls
var sdl string

// MaxDepth limits how deeply queries may nest movie/actor selections.
// Each movie/actor hop counts twice, so this allows about nine round trips.
const MaxDepth = 20

// SDL returns the schema source as embedded in the binary.
func SDL() string {
	return sdl
}

// NewSchema parses the schema and binds it to a root resolver over core.
// A nil logger discards resolver panic reports.
func NewSchema(core *recordcore.Core, logger *zap.Logger) (*graphql.Schema, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []graphql.SchemaOpt{
		graphql.UseStringDescriptions(),
		graphql.MaxDepth(MaxDepth),
		graphql.Logger(&panicLogger{log: logger}),
	}

	schema, err := graphql.ParseSchema(sdl, &Resolver{Core: core}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	return schema, nil
}

// FormatSDL validates the schema with gqlparser and prints it in
// canonical form.
func FormatSDL() (string, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: sdl})
	if err != nil {
		return "", fmt.Errorf("loading schema: %w", err)
	}

	var buf bytes.Buffer
	f := formatter.NewFormatter(&buf, formatter.WithIndent("  "))
	f.FormatSchema(schema)

	return buf.String(), nil
}

// panicLogger reports resolver panics recovered by the executor.
type panicLogger struct {
	log *zap.Logger
}

func (l *panicLogger) LogPanic(ctx context.Context, value interface{}) {
	fields := []zap.Field{zap.Any("panic", value), zap.Stack("stack")}
	if id := logging.RequestID(ctx); id != "" {
		fields = append(fields, zap.String("id", id))
	}
	l.log.Error("graphql resolver panic", fields...)
}
