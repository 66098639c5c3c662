package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/gatehound/internal/model"
)

func TestGuardTableClassify(t *testing.T) {
	table := GuardTable{
		Auth:   []string{"login_required", "authenticate"},
		Public: []string{"skip_before_action", "allowany"},
		Hints:  defaultHints(),
	}

	tests := []struct {
		name  string
		guard string
		want  GuardClass
	}{
		{"known auth marker", "login_required", GuardAuth},
		{"auth marker inside call text", "@login_required(redirect_url='/x')", GuardAuth},
		{"case insensitive", "Login_Required", GuardAuth},
		{"public override", "AllowAny", GuardPublic},
		{"public wins over auth substring", "skip_before_action :authenticate_user!", GuardPublic},
		{"auth-like but unknown", "check_team_membership", GuardIrrelevant},
		{"hint makes it suspicious", "verify_session_owner", GuardSuspicious},
		{"plain helper", "rate_limit", GuardIrrelevant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Classify(tt.guard))
		})
	}
}

func TestGuardTableExtend(t *testing.T) {
	table := GuardTable{Auth: []string{"authenticate"}}

	table.Extend([]string{"company_sso"}, []string{"internal_only"})

	assert.Equal(t, GuardAuth, table.Classify("company_sso"))
	assert.Equal(t, GuardPublic, table.Classify("internal_only"))
}

func TestSplitCallArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", `'/a', handler`, []string{`'/a'`, "handler"}},
		{"nested call", `'/a', wrap(views.index, login_required)`, []string{`'/a'`, "wrap(views.index, login_required)"}},
		{"comma inside quotes", `'/a,b', x`, []string{`'/a,b'`, "x"}},
		{"list argument", `methods=['GET', 'POST'], x`, []string{`methods=['GET', 'POST']`, "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCallArgs(tt.input))
		})
	}
}

func TestPathOrPlaceholder(t *testing.T) {
	assert.Equal(t, "/users", pathOrPlaceholder(`'/users'`))
	assert.Equal(t, "^api/(?P<pk>\\d+)$", pathOrPlaceholder(`r'^api/(?P<pk>\d+)$'`))
	assert.Equal(t, m.DynamicPathPlaceholder, pathOrPlaceholder(`BASE + '/users'`))
	assert.Equal(t, m.DynamicPathPlaceholder, pathOrPlaceholder(`prefix_var`))
}

func TestLogicalLinesMergesFluentChains(t *testing.T) {
	content := []byte("Route::get('/a', fn)\n    ->middleware('auth')\n    ->name('a');\nRoute::post('/b', fn2);\n")

	lines := logicalLines(content, "->")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0].text, "->middleware('auth')")
	assert.Equal(t, 1, lines[0].line)
	assert.Equal(t, 4, lines[1].line)
}

func TestScopeStack(t *testing.T) {
	var stack scopeStack

	stack.push("a", 1)
	stack.push("b", 2)
	assert.Equal(t, m.ScopeID("b"), stack.current())

	stack.closeAt(2)
	assert.Equal(t, m.ScopeID("a"), stack.current())

	stack.closeAt(1)
	assert.Equal(t, m.ScopeID(""), stack.current())
}

func TestBraceDelta(t *testing.T) {
	assert.Equal(t, 1, braceDelta(`Route::group([], function () {`))
	assert.Equal(t, -1, braceDelta(`});`))
	assert.Equal(t, 0, braceDelta(`echo "curly { inside string }" . '{';`))
}
