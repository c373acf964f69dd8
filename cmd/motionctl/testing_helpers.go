package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writePatch writes content to a temp patch file and returns its path
func writePatch(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write patch: %v", err)
	}
	return path
}

// resetFlags restores every command flag to its default
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	logDir = ""
	commitEncoding = ""
	commitTargets = nil
	commitDefaultTarget = targetText
	commitNoCopy = false
	validateEncoding = ""
	convertEncoding = ""
	convertSync = "auto"
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("output is not valid JSON: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		if !strings.Contains(output, exp) {
			t.Errorf("output missing expected string %q\nOutput: %s", exp, output)
		}
	}
}

// assertNotContains checks that output does not contain any of the strings
func assertNotContains(t *testing.T, output string, unexpected []string) {
	t.Helper()
	for _, s := range unexpected {
		if strings.Contains(output, s) {
			t.Errorf("output contains unexpected string %q\nOutput: %s", s, output)
		}
	}
}
