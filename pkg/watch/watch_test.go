package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.txt")
	if err := os.WriteFile(path, []byte("NEAR 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(p string) { changed <- p })
	}()

	// unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("NEAR 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		if p != w.Path() {
			t.Errorf("changed path = %q, want %q", p, w.Path())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 300*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 16)
	go w.Run(ctx, func(p string) { changed <- p })

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
	select {
	case <-changed:
		t.Error("expected a single notification for one burst")
	case <-time.After(600 * time.Millisecond):
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope", "scene.txt"), 0, nil); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestRun_AfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	w, err := New(path, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
	if err := w.Run(context.Background(), func(string) {}); err == nil {
		t.Error("expected error running a closed watcher")
	}
}
