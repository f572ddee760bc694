package local

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveOpenDelete(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key, size, mimeType, err := store.Save(ctx, "notes.txt", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if size != int64(len("hello world")) {
		t.Fatalf("expected size %d, got %d", len("hello world"), size)
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("expected text/plain mime, got %q", mimeType)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	raw, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "hello world" {
		t.Fatalf("expected round trip, got %q", raw)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Open(ctx, key); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected object gone, got %v", err)
	}
}

type brokenReader struct {
	data []byte
	read int
}

func (b *brokenReader) Read(p []byte) (int, error) {
	if b.read >= len(b.data) {
		return 0, errors.New("read: connection reset")
	}
	n := copy(p, b.data[b.read:])
	b.read += n
	return n, nil
}

func TestFailedSaveLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	// Reader delivers more than the sniff window, then fails mid-body.
	r := &brokenReader{data: bytes.Repeat([]byte("x"), 600)}
	_, _, _, err := store.Save(context.Background(), "notes.txt", r)
	if err == nil {
		t.Fatalf("expected save to fail")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read store dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no partial file after failed save, found %d entries", len(entries))
	}
}

func TestDeleteMissingKeyIsNotAnError(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Delete(context.Background(), "never-existed.txt"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestRejectsTraversalKeys(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "store"))
	ctx := context.Background()

	if _, err := store.Open(ctx, "../escape.txt"); err == nil {
		t.Fatalf("expected traversal key rejected on open")
	}
	if err := store.Delete(ctx, "/etc/passwd"); err == nil {
		t.Fatalf("expected absolute key rejected on delete")
	}
	if _, _, _, err := store.Save(ctx, "../escape.txt", strings.NewReader("x")); err == nil {
		t.Fatalf("expected traversal file name rejected on save")
	}
}
