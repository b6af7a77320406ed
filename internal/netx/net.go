// Package netx contains plain-HTTP helpers for talking to object storage
// through presigned URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxDownloadSize caps the body read by DownloadPresignedURL.
const MaxDownloadSize = 64 << 20

var httpClient = &http.Client{Timeout: time.Minute}

// DownloadPresignedURL fetches the object behind a presigned GET URL.
// Any status other than 200 is an error that includes the response body.
func DownloadPresignedURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxDownloadSize {
		return nil, fmt.Errorf("download exceeds %d bytes", MaxDownloadSize)
	}
	return body, nil
}
