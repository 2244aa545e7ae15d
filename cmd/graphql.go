package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/graph-gophers/graphql-go/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/moviegraph/moviegraph/internal/graph"
	"github.com/moviegraph/moviegraph/internal/recordcore"
)

var (
	queryJSON       bool
	queryVariables  string
	queryOperation  string
	querySchemaOnly bool
	querySchemaRaw  bool
)

var graphqlCmd = &cobra.Command{
	Use:     "graphql <query>",
	Aliases: []string{"query", "q"},
	Short:   "Execute a GraphQL query or mutation",
	Long: `Execute a GraphQL query or mutation against a freshly seeded store.

Mutations only affect this process; nothing is written back to the seed.

Examples:
  # List all movies
  moviegraph graphql '{ movies { id name } }'

  # Get an actor with their movies
  moviegraph graphql '{ actor(id: 1) { name movies { name } } }'

  # Use variables
  moviegraph graphql -v '{"id": 2}' 'query GetMovie($id: Int) { movie(id: $id) { name actor { name } } }'

  # Read from stdin
  echo '{ actors { name } }' | moviegraph graphql

  # Print the schema
  moviegraph graphql --schema

  # Print the schema exactly as embedded, descriptions and all
  moviegraph graphql --schema --raw`,
	Args: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return nil
		}
		// Allow 0 args if stdin has data, or exactly 1 arg
		if len(args) > 1 {
			return fmt.Errorf("accepts at most 1 argument (the GraphQL query)")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return printSchema(cmd.OutOrStdout(), querySchemaRaw)
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		} else {
			stdinQuery, err := readFromStdin()
			if err != nil {
				return err
			}
			if stdinQuery == "" {
				return fmt.Errorf("no query provided (pass as argument or pipe to stdin)")
			}
			query = stdinQuery
		}

		var variables map[string]interface{}
		if queryVariables != "" {
			if err := json.Unmarshal([]byte(queryVariables), &variables); err != nil {
				return fmt.Errorf("invalid variables JSON: %w", err)
			}
		}

		result, err := executeQuery(core, query, variables, queryOperation)
		if err != nil {
			return err
		}

		if queryJSON {
			fmt.Fprintln(cmd.OutOrStdout(), string(result))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty.Color(pretty.Pretty(result), nil)))
		}
		return nil
	},
}

// readFromStdin reads the query from stdin if data is available.
func readFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}

	// If stdin is a terminal (no pipe), return empty
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// executeQuery runs a GraphQL document against c.
// On success, it returns just the data portion of the response.
func executeQuery(c *recordcore.Core, query string, variables map[string]interface{}, operationName string) ([]byte, error) {
	schema, err := graph.NewSchema(c, logger)
	if err != nil {
		return nil, err
	}

	resp := schema.Exec(context.Background(), query, operationName, variables)
	if len(resp.Errors) > 0 {
		return nil, formatGraphQLErrors(resp.Errors)
	}

	return resp.Data, nil
}

// formatGraphQLErrors formats GraphQL errors into a single error.
func formatGraphQLErrors(errs []*errors.QueryError) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return fmt.Errorf("graphql: %s", errs[0].Message)
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("graphql errors:\n  %s", strings.Join(msgs, "\n  "))
}

// printSchema outputs the GraphQL schema, either verbatim or normalised
// by the formatter.
func printSchema(w io.Writer, raw bool) error {
	if raw {
		fmt.Fprint(w, graph.SDL())
		return nil
	}

	sdl, err := graph.FormatSDL()
	if err != nil {
		return err
	}
	fmt.Fprint(w, sdl)
	return nil
}

func init() {
	graphqlCmd.Flags().BoolVar(&queryJSON, "json", false, "Output raw JSON (no formatting)")
	graphqlCmd.Flags().StringVarP(&queryVariables, "variables", "v", "", "Query variables as JSON string")
	graphqlCmd.Flags().StringVarP(&queryOperation, "operation", "o", "", "Operation name (for multi-operation documents)")
	graphqlCmd.Flags().BoolVar(&querySchemaOnly, "schema", false, "Print the GraphQL schema and exit")
	graphqlCmd.Flags().BoolVar(&querySchemaRaw, "raw", false, "With --schema, print the embedded SDL without reformatting")
	rootCmd.AddCommand(graphqlCmd)
}
