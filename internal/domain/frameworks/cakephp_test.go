package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

const cakeRoutes = `<?php
use Cake\Routing\RouteBuilder;

$routes->scope('/admin', function (RouteBuilder $builder) {
    $builder->applyMiddleware('authentication');
    $builder->get('/dashboard', ['controller' => 'Dashboard', 'action' => 'index']);
});

$routes->connect('/pages/*', ['controller' => 'Pages', 'action' => 'display']);
`

func TestCakePHPExtract(t *testing.T) {
	adapter := newCakePHPAdapter()
	file := m.SourceFile{Path: "config/routes.php", Content: []byte(cakeRoutes)}

	require.True(t, adapter.Match(file))

	ext, diags := adapter.Extract(file)

	assert.Empty(t, diags)

	require.Len(t, ext.Scopes, 1)
	admin := ext.Scopes[0]
	assert.Equal(t, "/admin", admin.MountPrefix)
	assert.Equal(t, []string{"authentication"}, admin.InheritedGuards)
	assert.Equal(t, 4, admin.Location.Line)

	require.Len(t, ext.Candidates, 2)

	dashboard := ext.Candidates[0]
	assert.Equal(t, "/dashboard", dashboard.PathPattern)
	assert.Equal(t, []string{"get"}, dashboard.Methods)
	assert.Equal(t, admin.ID, dashboard.ScopeID)

	pages := ext.Candidates[1]
	assert.Equal(t, "/pages/*", pages.PathPattern)
	assert.Empty(t, pages.Methods)
	assert.Empty(t, pages.ScopeID)
}
