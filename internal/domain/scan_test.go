package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/gatehound/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/gatehound/internal/controller/mocks"
	"github.com/mouse-blink/gatehound/internal/domain/frameworks"
	m "github.com/mouse-blink/gatehound/internal/model"
)

const flaskFixture = `from flask import Flask
from flask_login import login_required

app = Flask(__name__)

@app.get('/health')
def health():
    pass

@app.post('/admin')
@login_required
def admin_panel():
    pass
`

func newTestWorkflow(t *testing.T) (*workflow, *adaptermocks.MockSourceFSAdapter, *adaptermocks.MockReportStore, *controllermocks.MockUI) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	return NewWorkflow(fs, store, ui).(*workflow), fs, store, ui
}

func TestScanExtractsAndClassifies(t *testing.T) {
	w, fs, _, _ := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("proj"), mock.Anything).Return([]m.Path{"proj/app.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("proj/app.py")).Return([]byte(flaskFixture), nil)

	results, err := w.Scan(context.Background(), ScanArgs{Roots: []m.Path{"proj"}, Workers: 4})

	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, m.Path("proj"), result.Root)
	assert.Empty(t, result.Diagnostics)
	require.Len(t, result.Routes, 2)

	admin := result.Routes[0]
	assert.Equal(t, "/admin", admin.FullPath)
	assert.Equal(t, []string{"POST"}, admin.Methods)
	assert.Equal(t, m.VerdictProtected, admin.Verdict)
	assert.Equal(t, m.FrameworkFlask, admin.Framework)

	health := result.Routes[1]
	assert.Equal(t, "/health", health.FullPath)
	assert.Equal(t, m.VerdictUnprotected, health.Verdict)
}

func TestScanIsIdempotent(t *testing.T) {
	// Includes a colliding duplicate so the merge path is covered too.
	aliased := []byte(`from flask import Flask
from flask_login import login_required

app = Flask(__name__)

@app.get('/items')
@login_required
def list_items():
    pass

@app.get('/items')
def list_items_legacy():
    pass
`)

	w, fs, _, _ := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("proj"), mock.Anything).Return([]m.Path{"proj/app.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("proj/app.py")).Return(aliased, nil)

	first, err := w.Scan(context.Background(), ScanArgs{Roots: []m.Path{"proj"}, Workers: 4})
	require.NoError(t, err)

	second, err := w.Scan(context.Background(), ScanArgs{Roots: []m.Path{"proj"}, Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, first, second)

	require.Len(t, first, 1)
	require.Len(t, first[0].Routes, 1)

	merged := first[0].Routes[0]
	assert.Equal(t, "/items", merged.FullPath)
	assert.Equal(t, []string{"GET"}, merged.Methods)
	assert.Equal(t, []string{"login_required"}, merged.EffectiveGuards)
	assert.Equal(t, m.VerdictProtected, merged.Verdict)
	assert.Equal(t, 1, merged.Collisions)
}

func TestScanUnreadableFileDegradesToDiagnostic(t *testing.T) {
	w, fs, _, _ := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("proj"), mock.Anything).Return([]m.Path{"proj/app.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("proj/app.py")).Return(nil, errors.New("permission denied"))

	results, err := w.Scan(context.Background(), ScanArgs{Roots: []m.Path{"proj"}})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Routes)

	require.Len(t, results[0].Diagnostics, 1)
	diag := results[0].Diagnostics[0]
	assert.Equal(t, m.SeverityWarning, diag.Severity)
	assert.Contains(t, diag.Message, "unreadable file")
}

func TestScanCyclicScopesPoisonOneRootOnly(t *testing.T) {
	cyclic := []byte(`from flask import Blueprint
a = Blueprint('a', __name__, url_prefix='/a')
b = Blueprint('b', __name__, url_prefix='/b')
a.register_blueprint(b)
b.register_blueprint(a)
`)

	w, fs, _, _ := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("bad"), mock.Anything).Return([]m.Path{"bad/routes.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("bad/routes.py")).Return(cyclic, nil)
	fs.EXPECT().ListFiles(m.Path("good"), mock.Anything).Return([]m.Path{"good/app.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("good/app.py")).Return([]byte(flaskFixture), nil)

	results, err := w.Scan(context.Background(), ScanArgs{Roots: []m.Path{"bad", "good"}})

	require.NoError(t, err)
	require.Len(t, results, 2)

	bad := results[0]
	assert.Empty(t, bad.Routes)
	require.NotEmpty(t, bad.Diagnostics)
	assert.Equal(t, m.SeverityError, bad.Diagnostics[0].Severity)
	assert.Contains(t, bad.Diagnostics[0].Message, "parent cycle")

	good := results[1]
	assert.Len(t, good.Routes, 2)
}

func TestScanUnknownFrameworkSelector(t *testing.T) {
	w, _, _, _ := newTestWorkflow(t)

	_, err := w.Scan(context.Background(), ScanArgs{
		Roots:      []m.Path{"proj"},
		Frameworks: []m.Framework{"struts"},
	})

	var unknown *frameworks.UnknownFrameworkError

	require.ErrorAs(t, err, &unknown)
}

func TestScanBadExcludePattern(t *testing.T) {
	w, _, _, _ := newTestWorkflow(t)

	_, err := w.Scan(context.Background(), ScanArgs{
		Roots:   []m.Path{"proj"},
		Exclude: []string{"["},
	})

	require.Error(t, err)
}

func TestScanListFilesFailureIsFatal(t *testing.T) {
	w, fs, _, _ := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("gone"), mock.Anything).Return(nil, errors.New("no such directory"))

	_, err := w.Scan(context.Background(), ScanArgs{Roots: []m.Path{"gone"}})

	require.Error(t, err)
}

func TestScanRespectsFrameworkSelection(t *testing.T) {
	w, fs, _, _ := newTestWorkflow(t)

	fs.EXPECT().ListFiles(m.Path("proj"), mock.Anything).Return([]m.Path{"proj/app.py"}, nil)
	fs.EXPECT().ReadFile(m.Path("proj/app.py")).Return([]byte(flaskFixture), nil)

	results, err := w.Scan(context.Background(), ScanArgs{
		Roots:      []m.Path{"proj"},
		Frameworks: []m.Framework{m.FrameworkDjango},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Routes)
}
