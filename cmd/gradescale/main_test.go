package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := "export_path = " + `"` + filepath.ToSlash(dir) + `"` + "\ndb_driver = \"none\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRADESCALE_CONFIG", cfgPath)
	return dir
}

func TestRun_PrintsScale(t *testing.T) {
	setup(t)
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-points", "50", "-scale", "T"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "Scale TECHNIKER [T], 50 points") {
		t.Fatalf("missing heading:\n%s", s)
	}
	// Techniker very good: round(0.85 * 50) = 43
	if !strings.Contains(s, "1      43") {
		t.Fatalf("missing very good row:\n%s", s)
	}
}

func TestRun_RosterAndExport(t *testing.T) {
	dir := setup(t)
	if err := os.WriteFile(filepath.Join(dir, "9a.csv"), []byte("name,points\nAlice,100\nBob,82\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	args := []string{"-roster", "9a.csv", "-c", ":e scale.xlsx"}
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	s := out.String()
	for _, want := range []string{"Class 9a", "Alice", "Average  1.50"} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in:\n%s", want, s)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "scale.xlsx")); err != nil {
		t.Fatalf("export not written: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	setup(t)
	for _, args := range [][]string{
		{"-scale", "bell"},
		{"-points", "0"},
		{"-c", ":q"},
		{"-roster", "missing.csv"},
	} {
		if err := run(context.Background(), args, &bytes.Buffer{}); err == nil {
			t.Fatalf("run %v: expected error", args)
		}
	}
}
