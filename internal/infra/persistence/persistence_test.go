package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule(t *testing.T) {
	for _, driver := range []string{"", "mongo", "postgres"} {
		t.Run("driver "+driver, func(t *testing.T) {
			opt, err := Module(driver)
			require.NoError(t, err)
			assert.NotNil(t, opt)
		})
	}

	_, err := Module("sqlite")
	assert.ErrorContains(t, err, `unsupported database driver "sqlite"`)
}
