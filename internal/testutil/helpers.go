package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteGlossaryCSV writes a ben,syl glossary with the given pairs to
// dir/glossary.csv and returns its path.
func WriteGlossaryCSV(t *testing.T, dir string, pairs [][2]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("ben,syl\n")
	for _, p := range pairs {
		b.WriteString(p[0] + "," + p[1] + "\n")
	}
	path := filepath.Join(dir, "glossary.csv")
	CreateTestFile(t, path, []byte(b.String()))
	return path
}

// WriteExamplesJSON writes an example pool with the given pairs to
// dir/<name> using the bangla_speech and sylhet_bangla_speech fields and
// returns its path.
func WriteExamplesJSON(t *testing.T, dir, name string, pairs [][2]string) string {
	t.Helper()

	records := make([]map[string]string, len(pairs))
	for i, p := range pairs {
		records[i] = map[string]string{
			"bangla_speech":        p[0],
			"sylhet_bangla_speech": p[1],
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("Failed to encode examples: %v", err)
	}
	path := filepath.Join(dir, name)
	CreateTestFile(t, path, data)
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
