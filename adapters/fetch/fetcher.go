package fetch

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"steplab/internal"
	"steplab/internal/errors"
)

// Fetcher downloads and unpacks the source archive so the input CSV exists
// before the loader runs. It is idempotent: an existing CSV short-circuits
// the whole bootstrap, and an already-downloaded archive is not fetched again.
type Fetcher struct {
	client *http.Client
	logger *internal.Logger
}

// NewFetcher creates a fetcher with a bounded download timeout
func NewFetcher(logger *internal.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 2 * time.Minute},
		logger: logger,
	}
}

// Ensure guarantees csvPath exists and is readable, downloading url to
// archivePath and extracting when needed.
func (f *Fetcher) Ensure(ctx context.Context, url, archivePath, csvPath string) error {
	if _, err := os.Stat(csvPath); err == nil {
		f.logger.Debug("input %s already present, skipping fetch", csvPath)
		return nil
	}

	if _, err := os.Stat(archivePath); err != nil {
		if err := f.download(ctx, url, archivePath); err != nil {
			return errors.FetchFailed(url, err)
		}
	} else {
		f.logger.Debug("archive %s already present, skipping download", archivePath)
	}

	if err := extractCSV(archivePath, csvPath); err != nil {
		return errors.FetchFailed(url, err)
	}
	f.logger.Info("extracted %s from %s", csvPath, archivePath)
	return nil
}

func (f *Fetcher) download(ctx context.Context, url, archivePath string) error {
	f.logger.Info("downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return err
	}

	// Write to a temp file first so a partial download never looks complete.
	tmp, err := os.CreateTemp(filepath.Dir(archivePath), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), archivePath)
}

// extractCSV pulls the first entry matching the target file name (or, failing
// that, the first .csv entry) out of the archive.
func extractCSV(archivePath, csvPath string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	target := filepath.Base(csvPath)
	var entry *zip.File
	for _, zf := range zr.File {
		if filepath.Base(zf.Name) == target {
			entry = zf
			break
		}
		if entry == nil && strings.EqualFold(filepath.Ext(zf.Name), ".csv") {
			entry = zf
		}
	}
	if entry == nil {
		return fmt.Errorf("archive %s contains no CSV entry", archivePath)
	}

	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
