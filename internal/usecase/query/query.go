package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

var ErrEmptyExpr = errors.New("empty jsonpath expression")

// Apply evaluates a JSONPath expression against a JSON document.
//
// Policy:
// - If body is not JSON -> error (nothing to project).
// - If the expression matches nothing -> error, so callers can exit non-zero.
func Apply(body []byte, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyExpr
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("query %s: document is not valid JSON: %w", expr, err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", expr, err)
	}
	if isEmptyValue(val) {
		return nil, fmt.Errorf("query %s: no value found", expr)
	}
	return val, nil
}

// ApplyValue marshals v and evaluates expr against the result.
func ApplyValue(v any, expr string) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", expr, err)
	}
	return Apply(b, expr)
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
