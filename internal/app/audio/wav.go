package audio

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-audio/wav"
	"github.com/samber/lo"

	apperrors "audio-transcriber/internal/app/errors"
)

// WAVMIMEType is the content type sent to the transcription service
const WAVMIMEType = "audio/wav"

// AllowedExtensions lists the file extensions the upload control accepts
var AllowedExtensions = []string{".wav"}

// Info describes a validated WAV upload. Only the header is read.
type Info struct {
	MIMEType   string
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// HasAllowedExtension reports whether filename ends in an accepted extension
func HasAllowedExtension(filename string) bool {
	return lo.Contains(AllowedExtensions, strings.ToLower(filepath.Ext(filename)))
}

// ValidateWAV checks that an upload is a WAV file by name and by content.
// Nothing is sent anywhere if this fails.
func ValidateWAV(filename string, data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, apperrors.ErrEmptyAudio
	}

	if !HasAllowedExtension(filename) {
		return nil, apperrors.Wrap(apperrors.ErrUnsupportedAudio,
			fmt.Sprintf("%q is not a WAV file (allowed: %s)", filename, strings.Join(AllowedExtensions, ", ")))
	}

	detected := mimetype.Detect(data)
	if !detected.Is(WAVMIMEType) {
		return nil, apperrors.Wrap(apperrors.ErrUnsupportedAudio,
			fmt.Sprintf("%q has content type %s, expected %s", filename, detected.String(), WAVMIMEType))
	}

	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, apperrors.Wrap(apperrors.ErrUnsupportedAudio,
			fmt.Sprintf("%q has a malformed WAV header", filename))
	}

	info := &Info{
		MIMEType:   WAVMIMEType,
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
	}

	// Duration is informational only, a header without a byte rate is still accepted
	if duration, err := decoder.Duration(); err == nil {
		info.Duration = duration
	}

	return info, nil
}
