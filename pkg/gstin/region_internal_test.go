package gstin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegions(t *testing.T) {
	t.Parallel()

	t.Run("embedded table", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, regions, 31)
	})

	t.Run("valid table", func(t *testing.T) {
		t.Parallel()
		m, err := loadRegions([]byte(`"27": Maharashtra` + "\n" + `"07": Delhi`))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"27": "Maharashtra", "07": "Delhi"}, m)
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		t.Parallel()
		_, err := loadRegions([]byte(`"7": Delhi`))
		assert.Error(t, err)

		_, err = loadRegions([]byte(`"A7": Delhi`))
		assert.Error(t, err)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		t.Parallel()
		_, err := loadRegions([]byte(`"07": ""`))
		assert.Error(t, err)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := loadRegions([]byte("- just\n- a list"))
		assert.Error(t, err)
	})
}
