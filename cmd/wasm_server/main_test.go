package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRouterHeaders(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, wasmFile), []byte("\x00asm"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := createHTMLFile(dir); err != nil {
		t.Fatal(err)
	}
	r := newRouter(dir)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+wasmFile, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/wasm" {
		t.Errorf("Expected application/wasm, got %q", ct)
	}
	if rec.Header().Get("Cross-Origin-Opener-Policy") != "same-origin" {
		t.Error("Missing Cross-Origin-Opener-Policy header")
	}
	if rec.Header().Get("Cross-Origin-Embedder-Policy") != "require-corp" {
		t.Error("Missing Cross-Origin-Embedder-Policy header")
	}

	// The query string is left for the game to read
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?5", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), wasmFile) {
		t.Errorf("Expected index page for /?5, got %d", rec.Code)
	}
}

func TestCreateHTMLFileKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte("custom"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := createHTMLFile(dir); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "custom" {
		t.Errorf("Existing index.html was overwritten: %q", data)
	}
}
