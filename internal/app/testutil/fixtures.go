package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Sample transcripts exercised by the display and download tests
var (
	TranscriptPlain     = "Hello from the recording."
	TranscriptMultiline = "First line.\nSecond line.\r\nThird line with trailing space. \n"
	TranscriptUnicode   = "Grüße, 世界! <b>not bold</b> & \"quoted\" 🎵"
)

// WAVBytes returns a 16-bit mono PCM WAV file of silence
func WAVBytes(sampleRate, seconds int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	blockAlign := channels * bitsPerSample / 8
	dataSize := sampleRate * blockAlign * seconds

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}

// ShortWAV is one second of 16 kHz silence
func ShortWAV() []byte {
	return WAVBytes(16000, 1)
}

// MP3Bytes returns an ID3-tagged byte slice that sniffs as audio/mpeg
func MP3Bytes() []byte {
	return append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 64)...)
}

// WriteFile writes data to name inside a fresh temp dir and returns the path
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteWAVFile writes ShortWAV to name inside a fresh temp dir
func WriteWAVFile(t *testing.T, name string) string {
	t.Helper()
	return WriteFile(t, name, ShortWAV())
}

// DirEntries returns the names in dir, failing the test on error
func DirEntries(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
