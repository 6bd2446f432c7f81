package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseVars turns repeated "name=value" flags into bindings.
func parseVars(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		name, raw, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: want name=value", p)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --var %q: %w", p, err)
		}
		out[name] = v
	}
	return out, nil
}

// missing returns the names not bound in vars, in the given order.
func missing(names []string, vars map[string]float64) []string {
	var out []string
	for _, n := range names {
		if _, ok := vars[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}
