package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestStorePathDefaultsPerKind(t *testing.T) {
	tests := []struct {
		kind, path, want string
	}{
		{"file", "", "data/copsis.json"},
		{"sqlite", "", "data/copsis.db"},
		{"memory", "", ""},
		{"sqlite", "/tmp/x.db", "/tmp/x.db"},
		{"file", "inv.json", "inv.json"},
	}
	for _, tt := range tests {
		if got := storePath(tt.kind, tt.path); got != tt.want {
			t.Errorf("storePath(%q, %q) = %q, want %q", tt.kind, tt.path, got, tt.want)
		}
	}
}

func TestPersistentPreRun_SQLiteStore(t *testing.T) {
	defer resetCLI()
	resetCLI()
	path := filepath.Join(t.TempDir(), "copsis.db")
	rootCmd.SetArgs([]string{"--store", "sqlite", "--store-file", path, "inventory", "get", "1"})
	if err := Execute(); err != nil {
		t.Fatalf("sqlite store failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sqlite database not created: %v", err)
	}
}

func TestUnknownStoreKind(t *testing.T) {
	defer resetCLI()
	resetCLI()
	rootCmd.SetArgs([]string{"--store", "unknown", "cart"})
	if err := Execute(); err == nil {
		t.Fatalf("expected error for unknown store kind, got nil")
	}
}

func TestInvalidTodayFlag(t *testing.T) {
	defer resetCLI()
	resetCLI()
	rootCmd.SetArgs([]string{"--today", "15/01/2025", "cart"})
	if err := Execute(); err == nil {
		t.Fatalf("expected error for malformed --today, got nil")
	}
}

func TestMissingCatalogFile(t *testing.T) {
	defer resetCLI()
	resetCLI()
	rootCmd.SetArgs([]string{"--catalog", filepath.Join(t.TempDir(), "none.yaml"), "catalog"})
	if err := Execute(); err == nil {
		t.Fatalf("expected error for missing catalog file, got nil")
	}
}

func TestImport_UnsupportedFormat(t *testing.T) {
	defer resetCLI()
	setupCLI(t)
	tmp := filepath.Join(t.TempDir(), "bad_import.json")
	_ = os.WriteFile(tmp, []byte("this is not json"), 0o644)

	rootCmd.SetArgs([]string{"inventory", "import", "--file", tmp})
	if err := Execute(); err == nil {
		t.Fatalf("expected error for unsupported import format, got nil")
	}
}

func TestImport_NDJSON(t *testing.T) {
	defer resetCLI()
	setupCLI(t)
	tmp := filepath.Join(t.TempDir(), "import.ndjson")
	data := "{\"id\":\"n1\",\"name\":\"Nasal Drops\",\"category\":\"Drops\",\"stock\":30}\n" +
		"{\"id\":\"n2\",\"name\":\"Salbutamol Inhaler\",\"category\":\"Inhalers\",\"stock\":9,\"rank\":\"AY\"}\n"
	_ = os.WriteFile(tmp, []byte(data), 0o644)

	rootCmd.SetArgs([]string{"inventory", "import", "--file", tmp})
	if err := Execute(); err != nil {
		t.Fatalf("expected successful NDJSON import, got error: %v", err)
	}

	it, err := inventoryManager.Get(context.Background(), "n2")
	if err != nil || it.Rank != "AY" {
		t.Fatalf("imported item missing: %+v %v", it, err)
	}
}

func TestExport_NoFileFlag(t *testing.T) {
	defer resetCLI()
	setupCLI(t)
	// ensure export subcommand flag is empty (clear any previous test state)
	exportCmd, _, err := rootCmd.Find([]string{"inventory", "export"})
	if err != nil {
		t.Fatal(err)
	}
	_ = exportCmd.Flags().Set("file", "")

	rootCmd.SetArgs([]string{"inventory", "export"})
	if err := Execute(); err == nil {
		t.Fatalf("expected error when export --file missing, got nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
