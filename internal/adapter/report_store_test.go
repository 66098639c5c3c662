package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

func TestReportStoreRoundtrip(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "report.json"))

	results := []m.ScanResult{{
		Root: "/srv/app",
		Routes: []m.Route{{
			Framework:       m.FrameworkFlask,
			FullPath:        "/api/items",
			Methods:         []string{"GET", "POST"},
			EffectiveGuards: []string{"login_required"},
			Verdict:         m.VerdictProtected,
			HandlerRef:      "list_items",
			Location:        m.SourceLocation{File: "app.py", Line: 12},
		}},
		Diagnostics: []m.Diagnostic{{
			File:     "broken.py",
			Message:  "unreadable file",
			Severity: m.SeverityWarning,
		}},
	}}

	store := NewReportStore()

	require.NoError(t, store.SaveResults(path, results))

	loaded, err := store.LoadResults(path)

	require.NoError(t, err)
	assert.Equal(t, results, loaded)
}

func TestReportStoreLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewReportStore().LoadResults(m.Path(path))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode results")
}

func TestReportStoreLoadMissingFile(t *testing.T) {
	_, err := NewReportStore().LoadResults(m.Path(filepath.Join(t.TempDir(), "missing.json")))

	require.Error(t, err)
}

func TestLoadPatternConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yml")
	require.NoError(t, os.WriteFile(path, []byte(`frameworks:
  flask:
    auth:
      - team_sso_required
    public:
      - internal_only
  gin:
    auth:
      - CompanyAuth
`), 0o644))

	cfg, err := LoadPatternConfig(NewLocalSourceFSAdapter(), m.Path(path))

	require.NoError(t, err)
	require.Len(t, cfg.Frameworks, 2)
	assert.Equal(t, []string{"team_sso_required"}, cfg.Frameworks["flask"].Auth)
	assert.Equal(t, []string{"internal_only"}, cfg.Frameworks["flask"].Public)
	assert.Equal(t, []string{"CompanyAuth"}, cfg.Frameworks["gin"].Auth)
}

func TestLoadPatternConfigBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yml")
	require.NoError(t, os.WriteFile(path, []byte("frameworks: [not: a: map"), 0o644))

	_, err := LoadPatternConfig(NewLocalSourceFSAdapter(), m.Path(path))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode patterns file")
}
