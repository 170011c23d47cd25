// Package mygraphql holds the GraphQL wire model, the reduction of a response into a single
// typed result and a minimal HTTP transport for the Storefront API.
package mygraphql

import (
	"fmt"
	"strings"

	"github.com/MarcGrol/shopclient/lib/myerrors"
)

type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Error struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Response is the outcome of a GraphQL operation. A nil Data means the payload was absent.
type Response[T any] struct {
	Data   *T      `json:"data"`
	Errors []Error `json:"errors,omitempty"`
}

// Reduce turns a response into its payload or into a single error.
// Errors take precedence: a payload delivered next to errors is discarded.
func Reduce[T any](resp Response[T]) (T, error) {
	var zero T

	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}
		return zero, myerrors.NewRemoteError(strings.Join(messages, "\n"))
	}

	if resp.Data == nil {
		return zero, myerrors.NewContractViolationError(fmt.Errorf("graphql response without errors carries no data"))
	}

	return *resp.Data, nil
}
