package model

// Severity classifies how serious a diagnostic is.
type Severity string

const (
	// SeverityWarning covers recoverable per-file conditions such as
	// parse failures and dedup collisions.
	SeverityWarning Severity = "WARNING"

	// SeverityError covers conditions that abort a single project's
	// normalization, such as a cyclic scope chain.
	SeverityError Severity = "ERROR"
)

// Diagnostic is an attributable, non-fatal finding tied to a file.
// Adapters and the normalizer report through diagnostics instead of
// aborting the scan.
type Diagnostic struct {
	File     Path     `json:"file"`
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
