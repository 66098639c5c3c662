package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

func TestParsePaths(t *testing.T) {
	t.Run("defaults to recursive current directory", func(t *testing.T) {
		assert.Equal(t, []m.Path{"./..."}, parsePaths(nil))
	})

	t.Run("passes explicit roots through", func(t *testing.T) {
		assert.Equal(t, []m.Path{"./svc/...", "./web"}, parsePaths([]string{"./svc/...", "./web"}))
	})
}

func TestParseFrameworks(t *testing.T) {
	assert.Empty(t, parseFrameworks(nil))
	assert.Equal(t, []m.Framework{m.FrameworkGin, m.FrameworkChi}, parseFrameworks([]string{"gin", "chi"}))
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"which", "view", "viz", "browse", "frameworks"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestWhichFlagDefaults(t *testing.T) {
	cmd := newWhichCmd()

	sort, err := cmd.Flags().GetString("sort")
	require.NoError(t, err)
	assert.Equal(t, "path", sort)

	parallel, err := cmd.Flags().GetInt("parallel")
	require.NoError(t, err)
	assert.Equal(t, 4, parallel)

	unprotected, err := cmd.Flags().GetBool("unprotected-only")
	require.NoError(t, err)
	assert.False(t, unprotected)
}
