package server

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// requestParams is a GraphQL request decoded from URL parameters.
type requestParams struct {
	Query         string
	OperationName string
	Variables     map[string]interface{}
}

func paramsFromQuery(c *gin.Context) (*requestParams, error) {
	p := &requestParams{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}

	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &p.Variables); err != nil {
			return nil, fmt.Errorf("invalid variables JSON: %w", err)
		}
	}
	return p, nil
}

// isMutation reports whether the selected operation is a mutation.
// Documents that fail to parse are left to the executor to reject.
func (p *requestParams) isMutation() bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: p.Query})
	if err != nil {
		return false
	}

	var op *ast.OperationDefinition
	if p.OperationName == "" {
		if len(doc.Operations) == 1 {
			op = doc.Operations[0]
		}
	} else {
		op = doc.Operations.ForName(p.OperationName)
	}

	return op != nil && op.Operation == ast.Mutation
}
