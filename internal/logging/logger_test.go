package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetState clears package globals between tests.
func resetState() {
	loggersMu.Lock()
	loggers = make(map[Category]*Logger)
	loggersMu.Unlock()
	configMu.Lock()
	config = loggingConfig{}
	configMu.Unlock()
	logsDir = ""
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestInitialize_NoConfigIsSilent(t *testing.T) {
	defer resetState()
	dir := t.TempDir()

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if IsCategoryEnabled(CategoryCompute) {
		t.Error("categories should be disabled without a config file")
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Error("logs dir should not be created when debug is off")
	}

	// No-op loggers must still be safe to use.
	Get(CategoryCompute).Info("dropped %d", 1)
}

func TestInitialize_DebugWritesCategoryFiles(t *testing.T) {
	defer resetState()
	dir := t.TempDir()
	writeConfig(t, dir, `{"logging":{"debug":true}}`)

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Compute("analyzed %d", 100)
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("reading logs dir: %v", err)
	}

	var computeLog string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_compute.log") {
			computeLog = filepath.Join(dir, "logs", e.Name())
		}
	}
	if computeLog == "" {
		t.Fatalf("no compute log file in %v", entries)
	}

	data, err := os.ReadFile(computeLog)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "analyzed 100") {
		t.Errorf("compute log missing entry: %q", data)
	}
}

func TestCategoryFilter(t *testing.T) {
	defer resetState()
	dir := t.TempDir()
	writeConfig(t, dir, `{"logging":{"debug":true,"categories":{"ui":false}}}`)

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if IsCategoryEnabled(CategoryUI) {
		t.Error("ui category should be disabled by config")
	}
	if !IsCategoryEnabled(CategoryCompute) {
		t.Error("unlisted categories default to enabled in debug mode")
	}
}
