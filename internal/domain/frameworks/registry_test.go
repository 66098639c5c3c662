package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

func TestAllReturnsEveryAdapterSorted(t *testing.T) {
	adapters := All()

	require.Len(t, adapters, 16)

	for i := 1; i < len(adapters); i++ {
		assert.Less(t, adapters[i-1].ID(), adapters[i].ID())
	}
}

func TestResolve(t *testing.T) {
	t.Run("empty selectors resolve to all adapters", func(t *testing.T) {
		adapters, err := Resolve(nil)

		require.NoError(t, err)
		assert.Len(t, adapters, 16)
	})

	t.Run("named selectors resolve in order, duplicates skipped", func(t *testing.T) {
		adapters, err := Resolve([]m.Framework{m.FrameworkRails, m.FrameworkDjango, m.FrameworkRails})

		require.NoError(t, err)
		require.Len(t, adapters, 2)
		assert.Equal(t, m.FrameworkDjango, adapters[0].ID())
		assert.Equal(t, m.FrameworkRails, adapters[1].ID())
	})

	t.Run("unknown selector fails fast", func(t *testing.T) {
		_, err := Resolve([]m.Framework{"struts"})

		var unknown *UnknownFrameworkError

		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, m.Framework("struts"), unknown.Selector)
	})
}

func TestDetect(t *testing.T) {
	adapters, err := Resolve(nil)
	require.NoError(t, err)

	file := m.SourceFile{
		Path:    "routes/web.php",
		Content: []byte(`<?php Route::get('/home', [HomeController::class, 'index']);`),
	}

	matched := Detect(adapters, file)

	require.Len(t, matched, 1)
	assert.Equal(t, m.FrameworkLaravel, matched[0].ID())
}
