//go:build unit || e2e

package testutil

import (
	"strconv"
	"strings"
)

// Field sets key in a DtoMap, or deletes it when value is nil. Keys may be
// dotted paths into nested objects and lists, e.g. "visitors.0.idNumber".
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		parts := strings.Split(key, ".")
		parent, ok := walk(m, parts[:len(parts)-1])
		if !ok {
			return
		}
		last := parts[len(parts)-1]
		if value == nil {
			delete(parent, last)
			return
		}
		parent[last] = value
	}
}

func walk(m map[string]any, path []string) (map[string]any, bool) {
	var cur any = m
	for _, p := range path {
		switch node := cur.(type) {
		case map[string]any:
			cur = node[p]
		case []any:
			i, err := strconv.Atoi(p)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	out, ok := cur.(map[string]any)
	return out, ok
}
