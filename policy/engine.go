// Package policy provides the guard policy applied to outbound chat exchanges.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.chat_guard.decision"),
		rego.Module("chat_guard.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks the chat guard policy. Input carries course_id and the
// (already truncated) message text. Returns the decision: allow or block.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy defines a default, so an empty result means the
		// module is broken; fail open rather than silencing the chat.
		return "allow", nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}

	return "allow", nil
}

// DefaultPolicy is the default chat guard: allow everything except messages
// carrying links, which the assistant backend refuses to answer anyway.
const DefaultPolicy = `
package chat_guard

import rego.v1

default decision := "allow"

decision := "block" if {
	contains(lower(input.message), "http://")
}

decision := "block" if {
	contains(lower(input.message), "https://")
}
`
