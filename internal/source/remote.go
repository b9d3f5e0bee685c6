// Package source resolves where the survey export comes from: a local file
// or a remote URL downloaded with retries.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/cenkalti/backoff/v4"

	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/logger"
)

// maxBody caps a downloaded export.
const maxBody = 64 << 20

// Fetcher downloads exports over HTTP. Server errors and transport failures
// are retried with exponential backoff until MaxElapsed; 4xx responses and
// bodies over MaxBytes fail immediately.
type Fetcher struct {
	Client          *http.Client
	MaxElapsed      time.Duration
	InitialInterval time.Duration
	MaxBytes        int64
}

// NewFetcher returns a fetcher whose whole download, retries included, is
// bounded by timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		Client:          &http.Client{Timeout: 12 * time.Second},
		MaxElapsed:      timeout,
		InitialInterval: 500 * time.Millisecond,
		MaxBytes:        maxBody,
	}
}

// Fetch downloads rawURL and returns the body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	log := logger.New().Component("source").WithField("url", rawURL)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = f.MaxElapsed
	if f.InitialInterval > 0 {
		bo.InitialInterval = f.InitialInterval
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = maxBody
	}

	var body []byte
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := f.Client.Do(req)
		if err != nil {
			log.WithField("attempt", attempt).WithField("error", err.Error()).Warn("download failed")
			return err
		}
		defer resp.Body.Close()

		// one byte past the limit tells a full body from a cut one
		data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
		if err != nil {
			return err
		}
		if int64(len(data)) > limit {
			return backoff.Permanent(fmt.Errorf("export exceeds %d bytes", limit))
		}
		if resp.StatusCode >= 500 {
			log.WithField("attempt", attempt).WithField("status", resp.StatusCode).Warn("server error")
			return fmt.Errorf("server error: %s", resp.Status)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status: %s", resp.Status))
		}
		if len(data) == 0 {
			return backoff.Permanent(errors.New("empty body"))
		}
		body = data
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	log.WithField("bytes", len(body)).WithField("attempts", attempt).Info("dataset downloaded")
	return body, nil
}

// Open loads the table from rawURL when set, otherwise from the local path.
func Open(ctx context.Context, localPath, rawURL string, timeout time.Duration) (*dataset.Table, error) {
	if rawURL == "" {
		return dataset.Load(localPath)
	}
	raw, err := NewFetcher(timeout).Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return dataset.LoadBytes(Name(rawURL), raw)
}

// Name is the file name at the end of a URL path, used for format detection.
func Name(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return rawURL
	}
	return path.Base(u.Path)
}
