package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_Disabled(t *testing.T) {
	s := NewSpinner(Config{Enabled: false}, "Transcribing")
	assert.NotPanics(t, func() {
		s.Done()
		s.Fail()
	})
}

// returnsWithin runs fn and fails the test if it has not returned after d
func returnsWithin(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not return within %s", d)
	}
}

func TestSpinner_Done(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(Config{Enabled: true, Writer: &buf}, "Transcribing")

	returnsWithin(t, 3*time.Second, func() {
		s.Done()
		s.Done()
	})
}

func TestSpinner_Fail(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(Config{Enabled: true, Writer: &buf}, "Transcribing")

	returnsWithin(t, 3*time.Second, s.Fail)
}

func TestSpinner_FailAfterDone(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(Config{Enabled: true, Writer: &buf}, "Transcribing")

	returnsWithin(t, 3*time.Second, func() {
		s.Done()
		s.Fail()
	})
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
