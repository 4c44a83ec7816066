package schema

import "strings"

// Issue is a single constraint violation at a JSON path such as "[2].createdAt".
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Issues is returned as an error when a payload fails validation.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, 0, len(is))
	for _, i := range is {
		parts = append(parts, i.String())
	}
	return "malformed payload: " + strings.Join(parts, "; ")
}

// Paths lists the offending paths in order.
func (is Issues) Paths() []string {
	out := make([]string, 0, len(is))
	for _, i := range is {
		out = append(out, i.Path)
	}
	return out
}
