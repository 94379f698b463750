package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"medsum/internal/config"
	"medsum/internal/summary"
	"medsum/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	backend    *testsupport.Backend
	configPath string
	baseDir    string
}

func sampleRecord() summary.Record {
	return summary.Record{
		GeneralSummary: "Mild anemia, otherwise normal panel.",
		PatientDetails: "Jane Doe, 42",
		Diagnosis:      summary.Entries{"Iron deficiency anemia"},
		TestResults:    summary.Entries{"Hemoglobin 10.9 g/dL", "Ferritin 8 ng/mL"},
	}
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv(config.SummarizerURLEnv, "")
	t.Setenv("NO_COLOR", "1")

	backend := testsupport.NewBackend(t, sampleRecord())
	cfg := testsupport.NewConfig(t, testsupport.WithSummarizerURL(backend.URL))
	cfg.Logging.Level = "error"

	configPath := filepath.Join(homeDir, ".config", "medsum", "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		backend:    backend,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	testsupport.WriteFile(t, path, data)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
