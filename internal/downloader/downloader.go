// Package downloader streams remote artifacts to local files.
package downloader

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// ErrUnexpectedStatus is returned when the server answers with anything but 200.
var ErrUnexpectedStatus = zerr.New("unexpected http status")

// Downloader fetches URLs over HTTP.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a downloader. A nil client means a plain
// http.Client with no timeout.
func NewDownloader(client *http.Client) *Downloader {
	if client == nil {
		client = &http.Client{}
	}
	return &Downloader{client: client}
}

// Fetch streams url into destPath, creating parent directories and
// truncating any existing file. A failure mid-stream leaves the partial file.
func (d *Downloader) Fetch(ctx context.Context, url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(destPath))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create request"), "url", url)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to download"), "url", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(ErrUnexpectedStatus, "url", url)
		return zerr.With(err, "status", resp.StatusCode)
	}

	out, err := os.Create(destPath) //nolint:gosec // destination is derived from resolved library paths
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", destPath)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return zerr.With(zerr.Wrap(err, "failed to write file"), "url", url)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", destPath)
	}
	return nil
}
