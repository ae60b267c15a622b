package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/pcquote"
	"github.com/etnz/pcquote/config"
	"github.com/etnz/pcquote/store"
	"github.com/google/subcommands"
)

const testCatalog = `[
  {"type": "CPU", "name": "Core i5-13400F", "cost": 1000, "price": 1299, "brand": "intel"},
  {"type": "CPU", "name": "Ryzen 5 7600", "cost": 1100, "price": 1399, "brand": "amd"},
  {"type": "主板", "name": "B760M", "cost": 700, "price": 899, "socket": "1700"},
  {"type": "内存", "name": "金士顿 16GB DDR4", "cost": 300, "price": 499},
  {"type": "显卡", "name": "RTX 4060", "price": 2399},
  {"type": "电源", "name": "长城 300W", "cost": 150, "price": 199, "wattage": 300}
]`

const testPresets = `- name: 入门
  description: entry level
  items:
    - {slot: cpu, name: Core i5-13400F}
    - {slot: ram, name: 金士顿 16GB DDR4, quantity: 2}
    - {slot: gpu, name: Missing GPU}
`

// testEnv is a temporary pcq setup: a catalog, a presets file and a file
// store, wired through a configuration file.
type testEnv struct {
	dir      string
	storeDir string
}

// setupTest writes the configuration and overrides the global flags for the
// duration of the test.
func setupTest(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{dir: dir, storeDir: filepath.Join(dir, "store")}

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		return path
	}
	catalog := write("catalog.json", testCatalog)
	presets := write("presets.yaml", testPresets)
	cfg := write(config.DefaultFile, fmt.Sprintf(`catalog_file: %q
presets_file: %q
log_level: error
store:
  kind: file
  dir: %q
`, catalog, presets, env.storeDir))

	for _, key := range []string{config.EnvCatalog, config.EnvCatalogURL, config.EnvPresets, config.EnvDatabaseURL, config.EnvLogLevel} {
		t.Setenv(key, "")
	}

	oldConfig, oldSession, oldPlain := configFile, sessionKey, plain
	key, plainOutput := store.DefaultKey, true
	configFile, sessionKey, plain = &cfg, &key, &plainOutput
	t.Cleanup(func() { configFile, sessionKey, plain = oldConfig, oldSession, oldPlain })
	return env
}

// run parses args for the command, executes it and returns its status and
// output.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %v: %v", args, err)
	}

	var buf bytes.Buffer
	oldStdout := stdout
	stdout = &buf
	defer func() { stdout = oldStdout }()

	status := c.Execute(context.Background(), f)
	return status, buf.String()
}

// mustRun runs the command and fails the test unless it succeeds.
func mustRun(t *testing.T, c subcommands.Command, args ...string) string {
	t.Helper()
	status, out := run(t, c, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("%s %v: expected ExitSuccess, got %v\nOutput:\n%s", c.Name(), args, status, out)
	}
	return out
}

// saved returns the ledger saved in the test store, nil if there is none.
func (e *testEnv) saved(t *testing.T, key string) *pcquote.Ledger {
	t.Helper()
	s, err := store.NewFileStore(e.storeDir)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	snap, err := s.Load(context.Background(), key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		t.Fatalf("Failed to load %q: %v", key, err)
	}
	l := pcquote.NewLedger()
	l.Restore(snap)
	return l
}

// line returns the saved line of the slot.
func (e *testEnv) line(t *testing.T, slot pcquote.Slot) pcquote.LineItem {
	t.Helper()
	l := e.saved(t, store.DefaultKey)
	if l == nil {
		t.Fatalf("no saved quote")
	}
	li, ok := l.Line(slot)
	if !ok {
		t.Fatalf("slot %s is empty in the saved quote", slot)
	}
	return li
}
