package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunPackPrintsSummary(t *testing.T) {
	path := writeScenarioFile(t)
	packScenarioPath = path

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := runPack(packCmd, nil)

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)

	if runErr != nil {
		t.Fatalf("runPack returned error: %v", runErr)
	}
	if buf.Len() == 0 {
		t.Fatal("expected pack summary output, got none")
	}
}

func TestRunPackMissingScenario(t *testing.T) {
	packScenarioPath = filepath.Join(t.TempDir(), "missing.json")
	if err := runPack(packCmd, nil); err == nil {
		t.Fatal("expected error for missing scenario file")
	}
}
