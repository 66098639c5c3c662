package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

const expressApp = `const express = require('express');
const app = express();
const router = express.Router();

router.get('/items', requireAuth, listItems);
router.post('/items', createItem);

app.use('/api', router);
app.get('/health', (req, res) => res.send('ok'));
`

func TestExpressExtract(t *testing.T) {
	adapter := newExpressAdapter()
	file := m.SourceFile{Path: "server.js", Content: []byte(expressApp)}

	require.True(t, adapter.Match(file))

	ext, diags := adapter.Extract(file)

	assert.Empty(t, diags)
	require.Len(t, ext.Scopes, 2)
	require.Len(t, ext.Candidates, 3)

	app := ext.Scopes[0]
	assert.Equal(t, "app", app.Name)
	assert.Empty(t, app.MountPrefix)

	router := ext.Scopes[1]
	assert.Equal(t, "router", router.Name)
	assert.Equal(t, "/api", router.MountPrefix)
	assert.Equal(t, app.ID, router.ParentID)

	items := ext.Candidates[0]
	assert.Equal(t, "/items", items.PathPattern)
	assert.Equal(t, []string{"get"}, items.Methods)
	assert.Equal(t, []string{"requireAuth"}, items.DeclaredGuards)
	assert.Equal(t, router.ID, items.ScopeID)

	create := ext.Candidates[1]
	assert.Equal(t, []string{"post"}, create.Methods)
	assert.Empty(t, create.DeclaredGuards)

	health := ext.Candidates[2]
	assert.Equal(t, "/health", health.PathPattern)
	assert.Equal(t, app.ID, health.ScopeID)
}

func TestExpressMountMiddlewareGuardsScope(t *testing.T) {
	content := []byte(`const app = express();
const admin = express.Router();
app.use('/admin', requireAuth, admin);
`)

	adapter := newExpressAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "server.js", Content: content})

	require.Len(t, ext.Scopes, 2)
	assert.Equal(t, "/admin", ext.Scopes[1].MountPrefix)
	assert.Equal(t, []string{"requireAuth"}, ext.Scopes[1].InheritedGuards)
}

func TestExpressDynamicPathPlaceholder(t *testing.T) {
	content := []byte(`const app = express();
app.get(prefix + '/users', listUsers);
`)

	adapter := newExpressAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "server.js", Content: content})

	require.Len(t, ext.Candidates, 1)
	assert.Equal(t, m.DynamicPathPlaceholder, ext.Candidates[0].PathPattern)
}

func TestExpressIgnoresHTTPClientCalls(t *testing.T) {
	content := []byte(`const express = require('express');
const app = express();

axios.get('/remote').then(cacheRemote);
got.post('/telemetry', { json: payload });

app.get('/items', listItems);
`)

	adapter := newExpressAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "server.js", Content: content})

	require.Len(t, ext.Candidates, 1)
	assert.Equal(t, "/items", ext.Candidates[0].PathPattern)
}

func TestExpressMultilineRegistration(t *testing.T) {
	content := []byte(`const app = express();
app.post(
  '/upload',
  requireAuth,
  uploadHandler,
);
`)

	adapter := newExpressAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "server.js", Content: content})

	require.Len(t, ext.Candidates, 1)
	assert.Equal(t, "/upload", ext.Candidates[0].PathPattern)
	assert.Equal(t, []string{"requireAuth"}, ext.Candidates[0].DeclaredGuards)
	assert.Equal(t, 2, ext.Candidates[0].Location.Line)
}
