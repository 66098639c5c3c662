package domain

import (
	"github.com/mouse-blink/gatehound/internal/domain/frameworks"
	m "github.com/mouse-blink/gatehound/internal/model"
)

// classify assigns a verdict to each route from its guard sets.
//
// An explicit public override anywhere wins, then a direct auth guard,
// then an inherited one. A guard that only looks auth-like leaves the
// route AMBIGUOUS rather than UNPROTECTED: a false alarm costs a
// glance, a missed unguarded route costs an incident.
func classify(routes []m.Route) []m.Route {
	for i := range routes {
		routes[i].Verdict = verdictFor(routes[i])
	}

	return routes
}

func verdictFor(route m.Route) m.Verdict {
	adapter, ok := frameworks.Lookup(route.Framework)
	if !ok {
		return m.VerdictAmbiguous
	}

	table := adapter.Guards()

	declared := classes(table, route.DeclaredGuards)
	effective := classes(table, route.EffectiveGuards)

	switch {
	case effective[frameworks.GuardPublic]:
		return m.VerdictUnprotected
	case declared[frameworks.GuardAuth]:
		return m.VerdictProtected
	case effective[frameworks.GuardAuth]:
		return m.VerdictInheritedProtected
	case effective[frameworks.GuardSuspicious]:
		return m.VerdictAmbiguous
	default:
		return m.VerdictUnprotected
	}
}

func classes(table *frameworks.GuardTable, guards []string) map[frameworks.GuardClass]bool {
	out := make(map[frameworks.GuardClass]bool, 3)

	for _, guard := range guards {
		out[table.Classify(guard)] = true
	}

	return out
}
