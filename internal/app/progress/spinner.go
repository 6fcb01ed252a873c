package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Config struct {
	Enabled bool
	Writer  io.Writer
}

// Spinner shows an indeterminate busy indicator while one blocking call runs.
// A disabled Spinner is a no-op.
type Spinner struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool
	once      sync.Once
}

func NewSpinner(config Config, description string) *Spinner {
	if !config.Enabled {
		return &Spinner{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	options := []mpb.ContainerOption{
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120 * time.Millisecond),
	}
	if !IsTTY(writer) {
		options = append(options, mpb.WithAutoRefresh())
	}
	container := mpb.New(options...)

	bar := container.AddSpinner(1,
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO), "done"),
		),
	)

	return &Spinner{
		container: container,
		bar:       bar,
		enabled:   true,
	}
}

// Done marks the spinner complete and waits for the final render
func (s *Spinner) Done() {
	s.finish(false)
}

// Fail stops the spinner without marking it complete
func (s *Spinner) Fail() {
	s.finish(true)
}

func (s *Spinner) finish(aborted bool) {
	if !s.enabled || s.bar == nil {
		return
	}
	s.once.Do(func() {
		if aborted {
			s.bar.Abort(false)
		} else {
			// total is fixed at 1, reaching it completes the bar
			s.bar.SetCurrent(1)
		}
		s.container.Wait()
	})
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr)
}
