package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloader_Fetch_SingleFile(t *testing.T) {
	// Arrange
	content := []byte("test jar content")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(content)
	}))
	defer server.Close()

	dl := NewDownloader(nil)
	destPath := filepath.Join(t.TempDir(), "core.jar")

	// Act
	err := dl.Fetch(context.Background(), server.URL+"/core.jar", destPath)

	// Assert
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	data, err := os.ReadFile(destPath)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != string(content) {
		t.Errorf("file content = %q, want %q", data, content)
	}
}

func TestDownloader_Fetch_OverwritesExisting(t *testing.T) {
	// Arrange: a longer stale file must be truncated, not appended to
	destPath := filepath.Join(t.TempDir(), "core.jar")
	if err := os.WriteFile(destPath, []byte("stale content that is much longer"), 0644); err != nil {
		t.Fatal(err)
	}

	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.Write([]byte("fresh"))
	}))
	defer server.Close()

	// Act
	err := NewDownloader(nil).Fetch(context.Background(), server.URL+"/core.jar", destPath)

	// Assert
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if requestCount != 1 {
		t.Errorf("server was called %d times, want 1", requestCount)
	}
	data, _ := os.ReadFile(destPath)
	if string(data) != "fresh" {
		t.Errorf("file content = %q, want %q", data, "fresh")
	}
}

func TestDownloader_Fetch_HTTPError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	destPath := filepath.Join(t.TempDir(), "notfound.jar")

	// Act
	err := NewDownloader(nil).Fetch(context.Background(), server.URL+"/notfound.jar", destPath)

	// Assert
	if err == nil {
		t.Fatal("Fetch() should return error for 404")
	}
	if _, statErr := os.Stat(destPath); !os.IsNotExist(statErr) {
		t.Error("no file should be created for a failed response")
	}
}

func TestDownloader_Fetch_TransportError(t *testing.T) {
	// Arrange: a closed server refuses connections
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL + "/gone.jar"
	server.Close()

	// Act
	err := NewDownloader(nil).Fetch(context.Background(), url, filepath.Join(t.TempDir(), "gone.jar"))

	// Assert
	if err == nil {
		t.Error("Fetch() should return error when the server is unreachable")
	}
}

func TestDownloader_Fetch_CreatesSubdirectories(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("content"))
	}))
	defer server.Close()

	destPath := filepath.Join(t.TempDir(), "org", "lib", "core", "1.0", "core-1.0.jar")

	// Act
	err := NewDownloader(nil).Fetch(context.Background(), server.URL+"/core.jar", destPath)

	// Assert
	if err != nil {
		t.Errorf("Fetch() error = %v", err)
	}
	if _, err := os.Stat(destPath); os.IsNotExist(err) {
		t.Error("file was not created with subdirectories")
	}
}
