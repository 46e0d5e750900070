package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestValidateSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	ValidateSnapshot(t, sample{Name: "pot", Count: 3}, 0)

	b, err := os.ReadFile(filepath.Join("testdata", "snapshot.TestValidateSnapshot-0.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"pot\",\n  \"count\": 3\n}\n", string(b))

	// a second call in the same test gets its own file
	ValidateSnapshot(t, sample{Name: "ante", Count: 5}, 0)
	_, err = os.Stat(filepath.Join("testdata", "snapshot.TestValidateSnapshot-1.json"))
	assert.NoError(t, err)

	// an existing snapshot is compared
	funcCount = make(map[string]int)
	ValidateSnapshot(t, sample{Name: "pot", Count: 3}, 0)
}
