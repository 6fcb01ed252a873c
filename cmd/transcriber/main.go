package main

import (
	"audio-transcriber/cmd/transcriber/cmd"
)

// @title Audio Transcriber API
// @version 1.0
// @description Upload a WAV file and get its transcript.
// @BasePath /api/v1
func main() {
	cmd.Execute()
}
