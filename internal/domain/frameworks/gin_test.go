package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

const ginRouter = `package main

import "github.com/gin-gonic/gin"

func main() {
	r := gin.Default()
	r.GET("/health", healthHandler)

	api := r.Group("/api", AuthRequired())
	api.POST("/items", RateLimit(), createItem)
	api.Use(RequireToken())
}
`

func TestGinExtract(t *testing.T) {
	adapter := newGinAdapter()
	file := m.SourceFile{Path: "main.go", Content: []byte(ginRouter)}

	require.True(t, adapter.Match(file))

	ext, diags := adapter.Extract(file)

	assert.Empty(t, diags)
	require.Len(t, ext.Scopes, 2)
	require.Len(t, ext.Candidates, 2)

	engine := ext.Scopes[0]
	assert.Equal(t, "r", engine.Name)
	assert.Empty(t, engine.MountPrefix)

	api := ext.Scopes[1]
	assert.Equal(t, "/api", api.MountPrefix)
	assert.Equal(t, engine.ID, api.ParentID)
	assert.Equal(t, []string{"AuthRequired()", "RequireToken()"}, api.InheritedGuards)

	health := ext.Candidates[0]
	assert.Equal(t, "/health", health.PathPattern)
	assert.Equal(t, []string{"GET"}, health.Methods)
	assert.Equal(t, "healthHandler", health.HandlerRef)
	assert.Equal(t, engine.ID, health.ScopeID)

	items := ext.Candidates[1]
	assert.Equal(t, "/items", items.PathPattern)
	assert.Equal(t, []string{"POST"}, items.Methods)
	assert.Equal(t, "createItem", items.HandlerRef)
	assert.Empty(t, items.DeclaredGuards)
	assert.Equal(t, api.ID, items.ScopeID)
}

func TestGinExtractDynamicPath(t *testing.T) {
	content := []byte(`package main

func routes(r *gin.Engine) {
	r.GET(prefix+"/users", listUsers)
}
`)

	adapter := newGinAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "routes.go", Content: content})

	require.Len(t, ext.Candidates, 1)
	assert.Equal(t, m.DynamicPathPlaceholder, ext.Candidates[0].PathPattern)
}

func TestGinExtractParseFailure(t *testing.T) {
	content := []byte("package main\n\nfunc broken( {\n")

	adapter := newGinAdapter()
	ext, diags := adapter.Extract(m.SourceFile{Path: "broken.go", Content: content})

	assert.Empty(t, ext.Candidates)
	require.Len(t, diags, 1)
	assert.Equal(t, m.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "go parse failure")
}
