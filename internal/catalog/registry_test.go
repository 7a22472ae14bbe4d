package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()

	assert.Equal(t, 11, r.Len())
	c, ok := r.Lookup("photography")
	require.True(t, ok)
	assert.Equal(t, "Photography", c.Name)

	c, ok = r.Lookup("  CATERING ")
	require.True(t, ok)
	assert.Equal(t, "catering", c.ID)

	_, ok = r.Lookup("Fireworks")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	r, err := Parse([]byte(`
categories:
  - id: venue
    name: Venue
  - name: Hair and Makeup
`))
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "venue", all[0].ID)
	assert.Equal(t, "hair-and-makeup", all[1].ID)

	c, ok := r.Lookup("hair and makeup")
	require.True(t, ok)
	assert.Equal(t, "Hair and Makeup", c.Name)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":     "categories: []",
		"no name":   "categories:\n  - id: x\n",
		"duplicate": "categories:\n  - name: Venue\n  - id: venue\n    name: Venues\n",
		"malformed": "categories: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 11, r.Len())

	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: Venue\n"), 0o600))
	r, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
