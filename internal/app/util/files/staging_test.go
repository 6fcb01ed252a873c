package files

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageBytes(t *testing.T) {
	dir := t.TempDir()

	staged, err := StageBytes(dir, []byte("payload"), ".wav")
	require.NoError(t, err)

	data, err := os.ReadFile(staged.Path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Contains(t, staged.Path, ".wav")

	require.NoError(t, staged.Remove())
	assert.NoFileExists(t, staged.Path)

	// second call is a no-op
	assert.NoError(t, staged.Remove())
}

func TestStageBytes_MissingDir(t *testing.T) {
	_, err := StageBytes("/non/existent/dir", []byte("x"), ".wav")
	assert.Error(t, err)
}

func TestWithStagedFile(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(path string) error
		expectErr bool
	}{
		{
			name:      "success",
			fn:        func(string) error { return nil },
			expectErr: false,
		},
		{
			name:      "callback error",
			fn:        func(string) error { return errors.New("service unavailable") },
			expectErr: true,
		},
		{
			name: "callback already removed the file",
			fn: func(path string) error {
				return os.Remove(path)
			},
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var seen string

			err := WithStagedFile(dir, []byte("audio"), ".wav", func(path string) error {
				seen = path
				assert.FileExists(t, path)
				return tt.fn(path)
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.NotEmpty(t, seen)
			assert.NoFileExists(t, seen)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestWithStagedFile_Panic(t *testing.T) {
	dir := t.TempDir()
	var seen string

	assert.Panics(t, func() {
		_ = WithStagedFile(dir, []byte("audio"), ".wav", func(path string) error {
			seen = path
			panic("boom")
		})
	})

	require.NotEmpty(t, seen)
	assert.NoFileExists(t, seen)
}
