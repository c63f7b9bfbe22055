package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// executeCommand runs the root command against an isolated config path.
func executeCommand(t *testing.T, configYAML string, args ...string) (string, string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if configYAML != "" {
		if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", path}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
