package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"path style", "http://localhost:9000/wedsimplify/uploads/abc?X-Amz-Signature=1", "/objects/uploads/abc"},
		{"virtual host", "https://wedsimplify.s3.example.com/uploads/abc?X-Amz-Signature=1", "/objects/uploads/abc"},
		{"already normalized", "/objects/uploads/abc", "/objects/uploads/abc"},
		{"duplicate slashes", "/objects/uploads//abc", "/objects/uploads/abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePath("wedsimplify", tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePath_Rejects(t *testing.T) {
	for _, raw := range []string{
		"https://cdn.example.com/other-bucket/uploads/abc",
		"not a url",
		"/objects/",
		"/objects/../secrets",
	} {
		_, err := NormalizePath("wedsimplify", raw)
		assert.Error(t, err, raw)
	}
}

func TestKeyFromPath(t *testing.T) {
	key, err := KeyFromPath("/objects/uploads/abc")
	require.NoError(t, err)
	assert.Equal(t, "uploads/abc", key)

	_, err = KeyFromPath("uploads/abc")
	assert.Error(t, err)
}
