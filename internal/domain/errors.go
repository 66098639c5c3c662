package domain

import (
	"fmt"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// CyclicScopeError reports a scope that is its own ancestor. It is
// fatal to the affected project's normalization only; sibling projects
// keep scanning.
type CyclicScopeError struct {
	Scope m.ScopeID
}

func (e *CyclicScopeError) Error() string {
	return fmt.Sprintf("scope %s is part of a parent cycle", e.Scope)
}
