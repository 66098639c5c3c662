package model

// SourceFile is one file handed to the extraction stage: the scanner
// owns traversal, adapters only ever see (path, content) pairs.
type SourceFile struct {
	Path    Path
	Content []byte
}

// ScanResult is the durable output of one scan: every classified route
// plus the diagnostics accumulated along the way.
type ScanResult struct {
	Root        Path         `json:"root"`
	Routes      []Route      `json:"routes"`
	Scopes      []Scope      `json:"scopes,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Unprotected returns the subset of routes whose verdict is
// UNPROTECTED or AMBIGUOUS, the findings the tool exists to surface.
func (r ScanResult) Unprotected() []Route {
	var out []Route

	for _, route := range r.Routes {
		if route.Verdict == VerdictUnprotected || route.Verdict == VerdictAmbiguous {
			out = append(out, route)
		}
	}

	return out
}
