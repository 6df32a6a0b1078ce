package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mrjoshuak/arcreader/types"
)

const (
	userAgent   = types.Name + "/" + types.Version
	maxPageSize = 32 << 20
)

// isURL reports whether arg names a web page rather than a file.
func isURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") || strings.HasPrefix(arg, "www.")
}

func normalizeURL(arg string) string {
	if strings.HasPrefix(arg, "www.") {
		return "http://" + arg
	}
	return arg
}

// fetch downloads a page. Bodies beyond maxPageSize are cut off.
func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
}
