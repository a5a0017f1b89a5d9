package graph

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler returns the HTTP handler serving the GraphQL endpoint.
// GraphiQL is exposed outside production for manual exploration.
func NewHandler(schema *graphql.Schema, graphiql bool) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
}
