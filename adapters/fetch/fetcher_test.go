package fetch

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"steplab/internal"
)

const fixtureCSV = "steps,date,interval\n5,2012-10-01,0\n"

func zipFixture(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestFetcher_DownloadsAndExtracts(t *testing.T) {
	payload := zipFixture(t, "activity.csv", fixtureCSV)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	archive := filepath.Join(dir, "activity.zip")
	csvPath := filepath.Join(dir, "activity.csv")

	f := NewFetcher(internal.NewLogger(internal.LogLevelError))
	if err := f.Ensure(context.Background(), srv.URL, archive, csvPath); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	got, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read extracted csv: %v", err)
	}
	if string(got) != fixtureCSV {
		t.Errorf("extracted content = %q, want %q", got, fixtureCSV)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1", hits.Load())
	}

	// Second call is a no-op: the CSV already exists.
	if err := f.Ensure(context.Background(), srv.URL, archive, csvPath); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("idempotent ensure hit the server again (%d hits)", hits.Load())
	}
}

func TestFetcher_ReusesExistingArchive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be contacted when the archive exists")
	}))
	defer srv.Close()

	dir := t.TempDir()
	archive := filepath.Join(dir, "activity.zip")
	csvPath := filepath.Join(dir, "activity.csv")
	if err := os.WriteFile(archive, zipFixture(t, "activity.csv", fixtureCSV), 0o644); err != nil {
		t.Fatalf("seed archive: %v", err)
	}

	f := NewFetcher(internal.NewLogger(internal.LogLevelError))
	if err := f.Ensure(context.Background(), srv.URL, archive, csvPath); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if _, err := os.Stat(csvPath); err != nil {
		t.Errorf("csv not extracted: %v", err)
	}
}

func TestFetcher_HTTPErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := NewFetcher(internal.NewLogger(internal.LogLevelError))
	err := f.Ensure(context.Background(), srv.URL,
		filepath.Join(dir, "activity.zip"), filepath.Join(dir, "activity.csv"))
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestFetcher_ArchiveWithoutCSVFails(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "activity.zip")
	if err := os.WriteFile(archive, zipFixture(t, "readme.txt", "hello"), 0o644); err != nil {
		t.Fatalf("seed archive: %v", err)
	}

	f := NewFetcher(internal.NewLogger(internal.LogLevelError))
	err := f.Ensure(context.Background(), "http://unused.invalid", archive, filepath.Join(dir, "activity.csv"))
	if err == nil {
		t.Fatal("expected an error for an archive without a CSV entry")
	}
}
