package finder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("app_name: test\n"), 0o644))
	missing := filepath.Join(dir, "missing.yaml")

	got, err := FindConfigFile(existing, true)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	_, err = FindConfigFile(missing, true)
	assert.Error(t, err)

	got, err = FindConfigFile(missing, false)
	require.NoError(t, err)
	assert.Equal(t, missing, got)

	_, err = FindConfigFile("", true)
	assert.Error(t, err)
}
