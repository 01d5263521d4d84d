package clicommand

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/Piclo/gadk"
	"github.com/Piclo/gadk/logger"
)

func testRegistry(t *testing.T) *gadk.Registry {
	t.Helper()

	reg := &gadk.Registry{}
	for _, filename := range []string{"ci", "nightly"} {
		filename := filename
		reg.Register(func() (*gadk.Workflow, error) {
			wf, err := gadk.NewWorkflow(filename, gadk.WorkflowConfig{Name: filename})
			if err != nil {
				return nil, err
			}
			wf.On(gadk.Triggers{Push: &gadk.On{Branches: []string{"main"}}})
			job, err := gadk.NewJob(gadk.JobConfig{
				SkipCheckout: true,
				Steps:        []gadk.Step{&gadk.RunStep{Command: "make test"}},
			})
			if err != nil {
				return nil, err
			}
			wf.AddJob("test", job)
			return wf, nil
		})
	}
	return reg
}

func TestSyncWritesFiles(t *testing.T) {
	dir := t.TempDir()
	l := logger.NewBuffer()

	cfg := SyncConfig{GlobalConfig: GlobalConfig{OutputDir: dir}}
	if err := sync(cfg, l, io.Discard, testRegistry(t)); err != nil {
		t.Fatalf("sync(cfg, l, w, reg) = %v", err)
	}

	for _, name := range []string{"ci.yml", "nightly.yml"} {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("os.ReadFile(%q) error = %v", path, err)
		}
		if !strings.HasPrefix(string(b), gadk.ProvenanceHeader) {
			t.Errorf("%s does not start with the provenance header:\n%s", name, b)
		}
	}

	wrote := 0
	for _, m := range l.Messages {
		if strings.HasPrefix(m, "[info] Wrote ") {
			wrote++
		}
	}
	if got, want := wrote, 2; got != want {
		t.Errorf("sync logged %d Wrote messages, want %d: %q", got, want, l.Messages)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	reg := testRegistry(t)
	cfg := SyncConfig{GlobalConfig: GlobalConfig{OutputDir: dir}}

	if err := sync(cfg, logger.Discard, io.Discard, reg); err != nil {
		t.Fatalf("sync(cfg, l, w, reg) = %v", err)
	}
	path := filepath.Join(dir, "ci.yml")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile(%q) error = %v", path, err)
	}

	if err := sync(cfg, logger.Discard, io.Discard, reg); err != nil {
		t.Fatalf("second sync(cfg, l, w, reg) = %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile(%q) error = %v", path, err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("two syncs produced different bytes:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestSyncPrint(t *testing.T) {
	dir := t.TempDir()
	w := &bytes.Buffer{}

	cfg := SyncConfig{
		GlobalConfig: GlobalConfig{OutputDir: dir},
		Print:        true,
	}
	if err := sync(cfg, logger.Discard, w, testRegistry(t)); err != nil {
		t.Fatalf("sync(cfg, l, w, reg) = %v", err)
	}

	out := w.String()
	if got, want := strings.Count(out, gadk.ProvenanceHeader), 2; got != want {
		t.Errorf("print output contains %d documents, want %d:\n%s", got, want, out)
	}
	if !strings.Contains(out, "\n---\n") {
		t.Errorf("print output is missing the document separator:\n%s", out)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("os.ReadDir(%q) error = %v", dir, err)
	}
	if len(entries) != 0 {
		t.Errorf("print mode wrote %d files, want none", len(entries))
	}
}

func TestSyncFilter(t *testing.T) {
	dir := t.TempDir()

	cfg := SyncConfig{GlobalConfig: GlobalConfig{
		OutputDir: dir,
		Filter:    "ci",
	}}
	if err := sync(cfg, logger.Discard, io.Discard, testRegistry(t)); err != nil {
		t.Fatalf("sync(cfg, l, w, reg) = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "ci.yml")); err != nil {
		t.Errorf("ci.yml was not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "nightly.yml")); !os.IsNotExist(err) {
		t.Errorf("nightly.yml should have been filtered out, stat error = %v", err)
	}
}

func TestSyncNothingMatches(t *testing.T) {
	l := logger.NewBuffer()

	cfg := SyncConfig{GlobalConfig: GlobalConfig{
		OutputDir: t.TempDir(),
		Filter:    "deploy*",
	}}
	if err := sync(cfg, l, io.Discard, testRegistry(t)); err != nil {
		t.Fatalf("sync(cfg, l, w, reg) = %v", err)
	}
	if got, want := l.Messages, "[warn] No workflows to render"; !slices.Contains(got, want) {
		t.Errorf("after sync, l.Messages = %q\nis missing %q", got, want)
	}
}

func TestSyncBadFilter(t *testing.T) {
	cfg := SyncConfig{GlobalConfig: GlobalConfig{
		OutputDir: t.TempDir(),
		Filter:    "ci[",
	}}
	if err := sync(cfg, logger.Discard, io.Discard, testRegistry(t)); err == nil {
		t.Errorf("sync with unterminated glob did not error")
	}
}
