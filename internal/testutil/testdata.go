package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// LoadJSON loads a JSON fixture from testdata relative to the repo root.
func LoadJSON(t *testing.T, rel string, v any) {
	t.Helper()
	data := readTestdata(t, rel)
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
}

// LoadPayload returns a raw terminal payload from testdata. The payload is
// returned verbatim; line breaks between frames are part of real captures.
func LoadPayload(t *testing.T, rel string) string {
	t.Helper()
	return string(readTestdata(t, rel))
}

// Path resolves a testdata file relative to the repo root.
func Path(t *testing.T, rel string) string {
	t.Helper()
	for _, path := range candidates(rel) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return ""
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	data, err := os.ReadFile(Path(t, rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return data
}

func candidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}
