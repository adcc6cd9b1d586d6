package local

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"studentdocs-backend/internal/shared/storage/object"
)

func TestPutGetDeleteRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	n, err := store.Put(ctx, "certificates", "u1/1700000000.pdf", "application/pdf", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 bytes written, got %d", n)
	}

	rc, err := store.Get(ctx, "certificates", "u1/1700000000.pdf")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, []byte("hello")) {
		t.Fatalf("expected body hello, got %q", data)
	}

	if err := store.Delete(ctx, "certificates", "u1/1700000000.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := store.Get(ctx, "certificates", "u1/1700000000.pdf"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetMissingObject(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Get(context.Background(), "resumes", "u1/missing.pdf"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMissingObjectIsNotFatal(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Delete(context.Background(), "resumes", "u1/missing.pdf"); err != nil {
		t.Fatalf("expected delete of missing key to succeed, got %v", err)
	}
}

func TestBucketsAreIsolated(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.Put(ctx, "marksheets", "u1/a.pdf", "application/pdf", strings.NewReader("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, err := store.Get(ctx, "certificates", "u1/a.pdf"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected object to be scoped to its bucket, got %v", err)
	}
}

func TestRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.Put(ctx, "certificates", "../../escape.pdf", "", strings.NewReader("x")); err == nil {
		t.Fatal("expected traversal path to be rejected")
	}
	if _, err := store.Get(ctx, "..", "x"); err == nil {
		t.Fatal("expected traversal bucket to be rejected")
	}
}
