package files

import (
	"fmt"
	"os"

	apperrors "audio-transcriber/internal/app/errors"
)

// StagedFile is a transient on-disk copy of an upload, for SDKs that only read from paths
type StagedFile struct {
	Path    string
	removed bool
}

// StageBytes writes data to a new temporary file in dir (os.TempDir when empty).
// The caller owns the file and must call Remove.
func StageBytes(dir string, data []byte, suffix string) (*StagedFile, error) {
	tmp, err := os.CreateTemp(dir, "transcriber-upload-*"+suffix)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFileWriteFailed, fmt.Sprintf("create staging file: %v", err))
	}

	staged := &StagedFile{Path: tmp.Name()}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		staged.Remove()
		return nil, apperrors.Wrap(apperrors.ErrFileWriteFailed, fmt.Sprintf("write staging file: %v", err))
	}
	if err := tmp.Close(); err != nil {
		staged.Remove()
		return nil, apperrors.Wrap(apperrors.ErrFileWriteFailed, fmt.Sprintf("close staging file: %v", err))
	}

	return staged, nil
}

// Remove deletes the staged file. It is safe to call more than once.
func (s *StagedFile) Remove() error {
	if s == nil || s.removed {
		return nil
	}
	s.removed = true

	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// WithStagedFile stages data, runs fn with the file path and removes the file
// afterwards, whether fn succeeds, fails or panics.
func WithStagedFile(dir string, data []byte, suffix string, fn func(path string) error) (err error) {
	staged, err := StageBytes(dir, data, suffix)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := staged.Remove(); rmErr != nil && err == nil {
			err = fmt.Errorf("remove staging file: %w", rmErr)
		}
	}()

	return fn(staged.Path)
}
