package audio_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-transcriber/internal/app/audio"
	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/testutil"
)

func TestValidateWAV(t *testing.T) {
	info, err := audio.ValidateWAV("meeting.wav", testutil.WAVBytes(16000, 2))
	require.NoError(t, err)

	assert.Equal(t, audio.WAVMIMEType, info.MIMEType)
	assert.Equal(t, 16000, info.SampleRate)
	assert.Equal(t, 1, info.Channels)
	assert.Equal(t, 16, info.BitDepth)
	assert.InDelta(t, 2.0, info.Duration.Seconds(), 0.05)
}

func TestValidateWAV_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		expected error
	}{
		{
			name:     "empty data",
			filename: "clip.wav",
			data:     nil,
			expected: apperrors.ErrEmptyAudio,
		},
		{
			name:     "wrong extension",
			filename: "clip.mp3",
			data:     testutil.ShortWAV(),
			expected: apperrors.ErrUnsupportedAudio,
		},
		{
			name:     "mp3 content renamed to wav",
			filename: "clip.wav",
			data:     testutil.MP3Bytes(),
			expected: apperrors.ErrUnsupportedAudio,
		},
		{
			name:     "plain text renamed to wav",
			filename: "notes.wav",
			data:     []byte("these are not audio samples"),
			expected: apperrors.ErrUnsupportedAudio,
		},
		{
			name:     "truncated header",
			filename: "clip.wav",
			data:     testutil.ShortWAV()[:16],
			expected: apperrors.ErrUnsupportedAudio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := audio.ValidateWAV(tt.filename, tt.data)
			require.Error(t, err)
			assert.Nil(t, info)
			assert.True(t, stderrors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestHasAllowedExtension(t *testing.T) {
	assert.True(t, audio.HasAllowedExtension("a.wav"))
	assert.True(t, audio.HasAllowedExtension("LOUD.WAV"))
	assert.False(t, audio.HasAllowedExtension("a.wave"))
	assert.False(t, audio.HasAllowedExtension("wav"))
	assert.False(t, audio.HasAllowedExtension(""))
}
