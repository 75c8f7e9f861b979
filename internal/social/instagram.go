package social

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"castingfy/internal/config"
	"castingfy/internal/logger"
)

// InstagramClient fetches recent public images for a handle by
// scraping the profile page. The markup is not a stable API: any
// fetch or parse failure degrades to an empty result, never an error
// surfaced to the profile page.
type InstagramClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewInstagramClient() *InstagramClient {
	cfg := config.GetConfig()
	return &InstagramClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Social.TimeoutSeconds) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.Social.InstagramBaseURL, "/"),
	}
}

// NewInstagramClientWithBase is used by tests to point the scraper at
// a stub server.
func NewInstagramClientWithBase(baseURL string, timeout time.Duration) *InstagramClient {
	return &InstagramClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

var displayURLPattern = regexp.MustCompile(`"display_url"\s*:\s*"([^"]+)"`)

// FetchRecentImages returns up to limit image URLs from the handle's
// public page. Best effort only.
func (c *InstagramClient) FetchRecentImages(ctx context.Context, handle string, limit int) []string {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = 12
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s/", c.baseURL, handle), nil)
	if err != nil {
		return []string{}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CastingfyBot/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.CtxDebug(ctx, "instagram fetch failed", "handle", handle, "error", err.Error())
		return []string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.CtxDebug(ctx, "instagram fetch non-200", "handle", handle, "status", resp.StatusCode)
		return []string{}
	}

	// Cap the read: profile pages are large and we only need the
	// embedded JSON near the top.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return []string{}
	}

	return extractImageURLs(string(body), limit)
}

func extractImageURLs(page string, limit int) []string {
	matches := displayURLPattern.FindAllStringSubmatch(page, -1)

	urls := make([]string, 0, limit)
	seen := make(map[string]bool)
	for _, m := range matches {
		u := unescapeJSONURL(m[1])
		if seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
		if len(urls) >= limit {
			break
		}
	}
	return urls
}

func unescapeJSONURL(s string) string {
	s = strings.ReplaceAll(s, `\u0026`, "&")
	s = strings.ReplaceAll(s, `\/`, "/")
	return s
}
