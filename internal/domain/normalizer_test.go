package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

func TestNormalizerResolvesPrefixesAndGuards(t *testing.T) {
	scopes := []m.Scope{
		{ID: "routes.py:1", MountPrefix: "/api", InheritedGuards: []string{"outer_auth"}},
		{ID: "routes.py:5", MountPrefix: "/v1", ParentID: "routes.py:1", InheritedGuards: []string{"inner_auth"}},
	}

	norm, err := newNormalizer(scopes)
	require.NoError(t, err)

	routes, diags := norm.normalize([]m.RouteCandidate{{
		Framework:      m.FrameworkFlask,
		PathPattern:    "/users",
		Methods:        []string{"get"},
		DeclaredGuards: []string{"login_required"},
		ScopeID:        "routes.py:5",
	}})

	assert.Empty(t, diags)
	require.Len(t, routes, 1)

	route := routes[0]
	assert.Equal(t, "/api/v1/users", route.FullPath)
	assert.Equal(t, []string{"GET"}, route.Methods)
	assert.Equal(t, []string{"login_required"}, route.DeclaredGuards)
	assert.Equal(t, []string{"login_required", "inner_auth", "outer_auth"}, route.EffectiveGuards)
}

func TestNormalizerExpandsEmptyMethodSet(t *testing.T) {
	norm, err := newNormalizer(nil)
	require.NoError(t, err)

	routes, _ := norm.normalize([]m.RouteCandidate{{PathPattern: "/anything"}})

	require.Len(t, routes, 1)
	assert.Equal(t, m.AllMethods, routes[0].Methods)
}

func TestNormalizerRejectsScopeCycle(t *testing.T) {
	scopes := []m.Scope{
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"},
	}

	_, err := newNormalizer(scopes)

	var cyclic *CyclicScopeError

	require.ErrorAs(t, err, &cyclic)
}

func TestNormalizerDanglingParentActsAsRoot(t *testing.T) {
	scopes := []m.Scope{
		{ID: "a", MountPrefix: "/admin", ParentID: "deleted-elsewhere"},
	}

	norm, err := newNormalizer(scopes)
	require.NoError(t, err)

	routes, _ := norm.normalize([]m.RouteCandidate{{PathPattern: "users", ScopeID: "a"}})

	require.Len(t, routes, 1)
	assert.Equal(t, "/admin/users", routes[0].FullPath)
}

func TestNormalizerMergesDuplicateRoutes(t *testing.T) {
	norm, err := newNormalizer(nil)
	require.NoError(t, err)

	routes, diags := norm.normalize([]m.RouteCandidate{
		{
			PathPattern:    "/login",
			Methods:        []string{"POST"},
			DeclaredGuards: []string{"throttle"},
			Location:       m.SourceLocation{File: "a.py", Line: 3},
		},
		{
			PathPattern:    "/login",
			Methods:        []string{"post"},
			DeclaredGuards: []string{"login_required"},
			Location:       m.SourceLocation{File: "b.py", Line: 9},
		},
	})

	require.Len(t, routes, 1)

	merged := routes[0]
	assert.Equal(t, 1, merged.Collisions)
	assert.Equal(t, []string{"throttle", "login_required"}, merged.EffectiveGuards)
	assert.Equal(t, m.Path("a.py"), merged.Location.File)

	require.Len(t, diags, 1)
	assert.Equal(t, m.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "duplicate route")
	assert.Contains(t, diags[0].Message, "a.py:3")
}

func TestNormalizerKeepsDistinctMethodSetsApart(t *testing.T) {
	norm, err := newNormalizer(nil)
	require.NoError(t, err)

	routes, diags := norm.normalize([]m.RouteCandidate{
		{PathPattern: "/items", Methods: []string{"GET"}},
		{PathPattern: "/items", Methods: []string{"POST"}},
	})

	assert.Empty(t, diags)
	assert.Len(t, routes, 2)
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"empty segments collapse to root", []string{"", ""}, "/"},
		{"redundant slashes trimmed", []string{"/api/", "/v1", "users/"}, "/api/v1/users"},
		{"bare names get a leading slash", []string{"admin"}, "/admin"},
		{"placeholders pass through", []string{"/api", "<dynamic>"}, "/api/<dynamic>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinPath(tt.segments))
		})
	}
}
