package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

const flaskApp = `from flask import Flask, Blueprint
from flask_login import login_required

app = Flask(__name__)
api = Blueprint('api', __name__, url_prefix='/api')

@api.route('/items', methods=['GET', 'POST'])
@login_required
def list_items():
    pass

@app.get('/health')
def health():
    return 'ok'

app.register_blueprint(api)
`

func TestFlaskExtract(t *testing.T) {
	adapter := newFlaskAdapter()
	file := m.SourceFile{Path: "app.py", Content: []byte(flaskApp)}

	require.True(t, adapter.Match(file))

	ext, diags := adapter.Extract(file)

	assert.Empty(t, diags)

	require.Len(t, ext.Scopes, 1)
	blueprint := ext.Scopes[0]
	assert.Equal(t, "/api", blueprint.MountPrefix)
	assert.Equal(t, "api", blueprint.Name)
	assert.Equal(t, 5, blueprint.Location.Line)

	require.Len(t, ext.Candidates, 2)

	items := ext.Candidates[0]
	assert.Equal(t, "/items", items.PathPattern)
	assert.Equal(t, []string{"GET", "POST"}, items.Methods)
	assert.Equal(t, "list_items", items.HandlerRef)
	assert.Equal(t, []string{"login_required"}, items.DeclaredGuards)
	assert.Equal(t, blueprint.ID, items.ScopeID)

	health := ext.Candidates[1]
	assert.Equal(t, "/health", health.PathPattern)
	assert.Equal(t, []string{"GET"}, health.Methods)
	assert.Empty(t, health.DeclaredGuards)
	assert.Empty(t, health.ScopeID)
}

func TestFlaskStackedRouteDecorators(t *testing.T) {
	content := []byte(`from flask import Flask
from flask_login import login_required

app = Flask(__name__)

@app.route('/old-users')
@app.route('/users')
@login_required
def users():
    pass
`)

	adapter := newFlaskAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "app.py", Content: content})

	require.Len(t, ext.Candidates, 2)

	old := ext.Candidates[0]
	assert.Equal(t, "/old-users", old.PathPattern)
	assert.Equal(t, []string{"login_required"}, old.DeclaredGuards)

	alias := ext.Candidates[1]
	assert.Equal(t, "/users", alias.PathPattern)
	assert.Equal(t, []string{"login_required"}, alias.DeclaredGuards)
	assert.Equal(t, "users", alias.HandlerRef)
}

func TestFlaskBlueprintParentLink(t *testing.T) {
	content := []byte(`parent = Blueprint('parent', __name__, url_prefix='/v1')
child = Blueprint('child', __name__, url_prefix='/users')
parent.register_blueprint(child)
`)

	adapter := newFlaskAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "routes.py", Content: content})

	require.Len(t, ext.Scopes, 2)
	assert.Equal(t, ext.Scopes[0].ID, ext.Scopes[1].ParentID)
}
