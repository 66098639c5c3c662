package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

const reactRoutes = `import { Routes, Route } from 'react-router-dom';

export default function App() {
  return (
    <Routes>
      <Route path="/" element={<Home />} />
      <Route path="/app" element={<Layout />}>
        <Route path="dashboard" element={<Dashboard />} />
      </Route>
      <RequireAuth>
        <Route path="/settings" element={<Settings />} />
      </RequireAuth>
    </Routes>
  );
}
`

func TestReactExtract(t *testing.T) {
	adapter := newReactAdapter()
	file := m.SourceFile{Path: "App.jsx", Content: []byte(reactRoutes)}

	require.True(t, adapter.Match(file))

	ext, diags := adapter.Extract(file)

	assert.Empty(t, diags)
	require.Len(t, ext.Scopes, 2)
	require.Len(t, ext.Candidates, 4)

	layout := ext.Scopes[0]
	assert.Equal(t, "/app", layout.MountPrefix)
	assert.Equal(t, "Layout", layout.Name)
	assert.Empty(t, layout.InheritedGuards)

	wrapper := ext.Scopes[1]
	assert.Equal(t, "RequireAuth", wrapper.Name)
	assert.Equal(t, []string{"RequireAuth"}, wrapper.InheritedGuards)

	home := ext.Candidates[0]
	assert.Equal(t, "/", home.PathPattern)
	assert.Equal(t, []string{"GET"}, home.Methods)
	assert.Equal(t, "Home", home.HandlerRef)
	assert.Empty(t, home.ScopeID)

	layoutRoute := ext.Candidates[1]
	assert.Equal(t, "/app", layoutRoute.PathPattern)
	assert.Equal(t, "Layout", layoutRoute.HandlerRef)

	dashboard := ext.Candidates[2]
	assert.Equal(t, "dashboard", dashboard.PathPattern)
	assert.Equal(t, layout.ID, dashboard.ScopeID)

	settings := ext.Candidates[3]
	assert.Equal(t, "/settings", settings.PathPattern)
	assert.Equal(t, wrapper.ID, settings.ScopeID)
}

func TestReactDynamicPathAttr(t *testing.T) {
	content := []byte(`<Routes>
  <Route path={routePaths.profile} element={<Profile />} />
</Routes>
`)

	adapter := newReactAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "App.tsx", Content: content})

	require.Len(t, ext.Candidates, 1)
	assert.Equal(t, m.DynamicPathPlaceholder, ext.Candidates[0].PathPattern)
}
