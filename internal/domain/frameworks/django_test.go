package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

const djangoURLConf = `from django.urls import path, re_path, include
from django.contrib.auth.decorators import login_required

urlpatterns = [
    path('admin/', login_required(views.admin_home)),
    re_path(r'^reports/(?P<year>\d{4})/$', views.reports),
    path('api/', include('api.urls')),
    path('public/', views.landing),
]

router.register(r'tickets', TicketViewSet)
`

func TestDjangoExtract(t *testing.T) {
	adapter := newDjangoAdapter()
	file := m.SourceFile{Path: "urls.py", Content: []byte(djangoURLConf)}

	require.True(t, adapter.Match(file))

	ext, diags := adapter.Extract(file)

	assert.Empty(t, diags)
	require.Len(t, ext.Candidates, 4)

	admin := ext.Candidates[0]
	assert.Equal(t, "admin/", admin.PathPattern)
	assert.Equal(t, []string{"login_required"}, admin.DeclaredGuards)
	assert.Equal(t, 5, admin.Location.Line)

	reports := ext.Candidates[1]
	assert.Equal(t, `^reports/(?P<year>\d{4})/$`, reports.PathPattern)
	assert.Empty(t, reports.DeclaredGuards)

	public := ext.Candidates[2]
	assert.Equal(t, "public/", public.PathPattern)
	assert.Empty(t, public.DeclaredGuards)

	tickets := ext.Candidates[3]
	assert.Equal(t, "tickets", tickets.PathPattern)
	assert.Equal(t, "TicketViewSet", tickets.HandlerRef)
}

func TestDjangoExtractSkipsIncludes(t *testing.T) {
	adapter := newDjangoAdapter()
	file := m.SourceFile{Path: "urls.py", Content: []byte(djangoURLConf)}

	ext, _ := adapter.Extract(file)

	for _, candidate := range ext.Candidates {
		assert.NotEqual(t, "api/", candidate.PathPattern)
	}
}

func TestDjangoMatchRejectsOtherPython(t *testing.T) {
	adapter := newDjangoAdapter()

	assert.False(t, adapter.Match(m.SourceFile{Path: "tasks.py", Content: []byte("import celery")}))
	assert.False(t, adapter.Match(m.SourceFile{Path: "urls.txt", Content: []byte("urlpatterns")}))
}
