// Package fetch loads archives from the network or the local disk.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// MaxArchiveSize bounds how much of a response or file is read.
const MaxArchiveSize = 256 << 20

var ErrTooLarge = errors.New("archive exceeds size limit")

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %v", e.StatusCode, e.URL)
}

type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: "maniac/0.1",
	}
}

func IsRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load downloads http(s) sources and reads anything else from disk.
func (f *Fetcher) Load(ctx context.Context, source string) ([]byte, error) {
	if IsRemote(source) {
		return f.Get(ctx, source)
	}
	file, err := os.Open(source)
	if nil != err {
		return nil, err
	}
	defer file.Close()
	return readLimited(file)
}

func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if nil != err {
		return nil, fmt.Errorf("unable to build request: %w", err)
	}
	req.Header.Set("Accept", "application/octet-stream,application/zip,*/*")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if nil == client {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if nil != err {
		return nil, fmt.Errorf("unable to fetch %v: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := readLimited(resp.Body)
	if nil != err {
		return nil, fmt.Errorf("unable to read %v: %w", url, err)
	}
	return body, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxArchiveSize+1))
	if nil != err {
		return nil, err
	}
	if len(data) > MaxArchiveSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
