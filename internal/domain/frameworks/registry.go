package frameworks

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// UnknownFrameworkError is returned when a --framework selector names
// no registered adapter. It is surfaced before any file is scanned.
type UnknownFrameworkError struct {
	Selector m.Framework
}

func (e *UnknownFrameworkError) Error() string {
	return fmt.Sprintf("unknown framework selector %q", string(e.Selector))
}

var registry = map[m.Framework]Adapter{}

// Register adds an adapter to the registry. Registration happens from
// each adapter file's init so that adding a framework never touches
// existing code.
func Register(adapter Adapter) {
	registry[adapter.ID()] = adapter
}

// Lookup returns the adapter for one framework id.
func Lookup(id m.Framework) (Adapter, bool) {
	adapter, ok := registry[id]

	return adapter, ok
}

// All returns every registered adapter ordered by id.
func All() []Adapter {
	out := make([]Adapter, 0, len(registry))
	for _, adapter := range registry {
		out = append(out, adapter)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// Resolve maps selectors to adapters, failing fast on an unknown
// selector. An empty selector set resolves to every adapter
// (autodetect-all).
func Resolve(selectors []m.Framework) ([]Adapter, error) {
	if len(selectors) == 0 {
		return All(), nil
	}

	seen := make(map[m.Framework]struct{}, len(selectors))
	out := make([]Adapter, 0, len(selectors))

	for _, selector := range selectors {
		if _, dup := seen[selector]; dup {
			continue
		}

		seen[selector] = struct{}{}

		adapter, ok := registry[selector]
		if !ok {
			return nil, &UnknownFrameworkError{Selector: selector}
		}

		out = append(out, adapter)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out, nil
}

// Detect returns the subset of candidates whose Match accepts the file.
func Detect(candidates []Adapter, file m.SourceFile) []Adapter {
	var out []Adapter

	for _, adapter := range candidates {
		if adapter.Match(file) {
			out = append(out, adapter)
		}
	}

	return out
}
