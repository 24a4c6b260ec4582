package main

import (
	"os"
	"path/filepath"
	"testing"
)

func runReportWith(t *testing.T, format, out string) error {
	t.Helper()
	reportScenarioPath = writeScenarioFile(t)
	reportFormat = format
	reportOutPath = out
	reportContainer = ""
	return runReport(reportCmd, nil)
}

func TestRunReportPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	if err := runReportWith(t, "pdf", out); err != nil {
		t.Fatalf("runReport returned error: %v", err)
	}
	assertNonEmptyFile(t, out)
}

func TestRunReportXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xlsx")
	if err := runReportWith(t, "xlsx", out); err != nil {
		t.Fatalf("runReport returned error: %v", err)
	}
	assertNonEmptyFile(t, out)
}

func TestRunReportQRCode(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	if err := runReportWith(t, "qrcode", out); err != nil {
		t.Fatalf("runReport returned error: %v", err)
	}
	assertNonEmptyFile(t, out)
}

func TestRunReportDXF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.dxf")
	if err := runReportWith(t, "dxf", out); err != nil {
		t.Fatalf("runReport returned error: %v", err)
	}
	assertNonEmptyFile(t, out)
}

func TestRunReportUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.bin")
	if err := runReportWith(t, "bogus", out); err == nil {
		t.Fatal("expected error for unknown report format")
	}
}

func TestRunReportUnknownContainer(t *testing.T) {
	reportScenarioPath = writeScenarioFile(t)
	reportFormat = "qrcode"
	reportOutPath = filepath.Join(t.TempDir(), "out.png")
	reportContainer = "does-not-exist"

	if err := runReport(reportCmd, nil); err == nil {
		t.Fatal("expected error for unknown container name")
	}
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("file is empty")
	}
}
