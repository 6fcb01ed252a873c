// Package testutil provides shared helpers for the transcriber tests.
//
// It contains three components:
//
// 1. Fixtures (fixtures.go):
//   - WAVBytes: builds a valid PCM WAV file of a given length in memory
//   - WriteWAVFile / WriteFile: write fixtures into a test temp dir
//   - Sample transcripts with awkward characters and line endings
//
// 2. Mock transcriber (mock_transcriber.go):
//   - MockTranscriber: testify mock of transcription.Transcriber, used by
//     the HTTP handler and CLI tests
//
// 3. Mock provider (mock_provider.go):
//   - MockProvider: testify mock of provider.TranscriptionProvider, used by
//     the service tests to observe the staged file during the call
//   - RecordingMetrics: an in-memory provider.ProviderMetrics
//
// # Usage
//
//	func TestUpload(t *testing.T) {
//	    m := testutil.NewMockTranscriber().WithTranscript("hello world")
//	    // hand m to the handler under test
//	    m.AssertNumberOfCalls(t, "Transcribe", 1)
//	}
//
// Mock calls are safe for concurrent use.
package testutil
