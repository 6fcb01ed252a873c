package transcribe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"audio-transcriber/internal/app"
	"audio-transcriber/internal/app/progress"
	"audio-transcriber/internal/app/transcription"
)

var (
	outputPath   string
	showProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the transcript to this file instead of stdout, e.g. transcript.txt")
	Cmd.Flags().BoolVarP(&showProgress, "progress", "p", false,
		"force the busy indicator even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file.wav>",
	Short: "Transcribe one WAV file",
	Long: `Transcribe one WAV file.

- The file is checked to be WAV audio before anything is sent
- The transcript is printed to stdout, or written unchanged to --output`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		application, err := app.Bootstrap(cmd.Context(), verbose)
		if err != nil {
			return err
		}
		defer application.Close()

		return run(cmd.Context(), application.Service, options{
			inputPath:  args[0],
			outputPath: outputPath,
			progress: progress.Config{
				Enabled: progress.ShouldShowProgress(showProgress),
				Writer:  cmd.ErrOrStderr(),
			},
			maxBytes: application.Settings.MaxUploadBytes(),
			stdout:   cmd.OutOrStdout(),
		})
	},
}

type options struct {
	inputPath  string
	outputPath string
	progress   progress.Config
	maxBytes   int64
	stdout     io.Writer
}

func run(ctx context.Context, service transcription.Transcriber, opts options) error {
	info, err := os.Stat(opts.inputPath)
	if err != nil {
		return err
	}
	if opts.maxBytes > 0 && info.Size() > opts.maxBytes {
		return fmt.Errorf("%s is %d MB, the limit is %d MB", opts.inputPath, info.Size()>>20, opts.maxBytes>>20)
	}

	data, err := os.ReadFile(opts.inputPath)
	if err != nil {
		return err
	}

	spinner := progress.NewSpinner(opts.progress, "Transcribing "+filepath.Base(opts.inputPath))
	result, err := service.Transcribe(ctx, transcription.Upload{
		Filename: filepath.Base(opts.inputPath),
		Data:     data,
	})
	if err != nil {
		spinner.Fail()
		return errors.New(transcription.UserMessage(err))
	}
	spinner.Done()

	if opts.outputPath == "" {
		_, err = io.WriteString(opts.stdout, result.Transcript)
		return err
	}
	return os.WriteFile(opts.outputPath, []byte(result.Transcript), 0644)
}
