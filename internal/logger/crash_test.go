package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCrashHandler_SetContext(t *testing.T) {
	globalContext = &CrashContext{}

	SetBasePath("/tmp/test-cake")
	SetVersion("1.0.0-test")
	SetCommand("list")
	SetArgs([]string{"cake", "list", "-r"})
	SetInputFile("/tmp/cake.json")

	log := createCrashLog("boom")
	if log.Version != "1.0.0-test" {
		t.Errorf("Expected version '1.0.0-test', got '%s'", log.Version)
	}
	if log.Command != "list" {
		t.Errorf("Expected command 'list', got '%s'", log.Command)
	}
	if log.Args != "cake list -r" {
		t.Errorf("Expected args 'cake list -r', got '%s'", log.Args)
	}
	if log.InputFile != "/tmp/cake.json" {
		t.Errorf("Expected input file '/tmp/cake.json', got '%s'", log.InputFile)
	}
	if log.PanicValue != "boom" || log.StackTrace == "" || log.GoVersion == "" {
		t.Errorf("Unexpected crash log %+v", log)
	}
}

func TestCrashHandler_SetArgs_Truncation(t *testing.T) {
	globalContext = &CrashContext{}
	SetArgs([]string{strings.Repeat("a", 3000)})

	log := createCrashLog("x")
	if len(log.Args) > 600 {
		t.Errorf("Expected args to be truncated, got length %d", len(log.Args))
	}
	if !strings.Contains(log.Args, "[truncated]") {
		t.Error("Expected truncated args to contain '[truncated]'")
	}
}

func TestCrashHandler_FormatCrashLog(t *testing.T) {
	log := CrashLog{
		Timestamp:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Version:    "1.0.0",
		Command:    "add",
		Args:       "cake add -m hi",
		InputFile:  "/data/cake.md",
		PanicValue: "test panic",
		StackTrace: "goroutine 1 [running]:\nmain.main()",
		GoVersion:  "go1.24.3",
		OS:         "linux",
		Arch:       "amd64",
	}

	formatted := formatCrashLog(log)
	for _, expected := range []string{
		"cake crash log",
		"Timestamp: 2025-01-01T12:00:00Z",
		"Command:   add",
		"Args:      cake add -m hi",
		"Input:     /data/cake.md",
		"OS/Arch:   linux/amd64",
		"panic: test panic",
		"goroutine 1 [running]",
	} {
		if !strings.Contains(formatted, expected) {
			t.Errorf("Expected formatted log to contain '%s'", expected)
		}
	}
}

func TestCrashHandler_WriteCrashLog(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "data")
	globalContext = &CrashContext{basePath: basePath}

	log := createCrashLog("test panic")
	if err := writeCrashLog(log); err != nil {
		t.Fatalf("writeCrashLog failed: %v", err)
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Expected 1 crash log, got %d", len(logs))
	}
	content, err := os.ReadFile(logs[0])
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "test panic") {
		t.Error("Expected crash log to contain panic value")
	}
}

func TestCrashHandler_CleanOldLogs(t *testing.T) {
	basePath := t.TempDir()
	crashDir := filepath.Join(basePath, CrashLogDir)
	if err := os.MkdirAll(crashDir, 0o755); err != nil {
		t.Fatalf("Failed to create crash dir: %v", err)
	}
	globalContext = &CrashContext{basePath: basePath}

	for i := range MaxCrashLogs + 5 {
		name := filepath.Join(crashDir, fmt.Sprintf("crash_20250101_1200%02d.log", i))
		if err := os.WriteFile(name, []byte("test"), 0o644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	if err := cleanOldCrashLogs(crashDir); err != nil {
		t.Fatalf("cleanOldCrashLogs failed: %v", err)
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs failed: %v", err)
	}
	if len(logs) != MaxCrashLogs-1 {
		t.Fatalf("Expected %d crash logs after cleanup, got %d", MaxCrashLogs-1, len(logs))
	}
	if filepath.Base(logs[0]) != "crash_20250101_120006.log" {
		t.Errorf("Expected oldest logs to be removed, first remaining is %s", filepath.Base(logs[0]))
	}
}
