package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio-transcriber/cmd/transcriber/cmd/serve"
	"audio-transcriber/cmd/transcriber/cmd/transcribe"
	"audio-transcriber/cmd/transcriber/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcriber",
	Short: "Transcribe WAV recordings with a hosted speech model",
	Long: `Transcribe WAV recordings with a hosted speech model.
- serve: a single-page web form to upload a WAV file, read the transcript and download it
- transcribe: the same round trip for one local file from the command line

The API key is read from GOOGLE_API_KEY (or OPENAI_API_KEY with TRANSCRIBER_PROVIDER=openai),
or from the secrets file .secrets/secrets.yaml.`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
