package backdrop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vovakirdan/skyraid/internal/config"
)

// maxImageBytes caps a single download.
const maxImageBytes = 32 << 20

// RedditSource lists the month's top posts of a subreddit and keeps
// those linking straight to a JPEG or PNG.
type RedditSource struct {
	BaseURL   string
	UserAgent string
	Limit     int
	Client    *http.Client
}

// NewRedditSource builds a source from backdrop settings.
func NewRedditSource(cfg config.BackdropConfig) *RedditSource {
	return &RedditSource{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Limit:     cfg.ListingLimit,
		Client:    &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond},
	}
}

type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				URL           string `json:"url"`
				URLOverridden string `json:"url_overridden_by_dest"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// List implements Source.
func (s *RedditSource) List(ctx context.Context, category string) ([]ImageRef, error) {
	u := fmt.Sprintf("%s/r/%s/top/.json?limit=%d&t=month", s.BaseURL, url.PathEscape(category), s.Limit)

	body, err := s.get(ctx, "list", u)
	if err != nil {
		return nil, err
	}

	var l listing
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, &FetchError{Kind: KindMalformed, Op: "list", URL: u, Err: err}
	}

	refs := make([]ImageRef, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		link := child.Data.URLOverridden
		if link == "" {
			link = child.Data.URL
		}
		if link == "" || !hasImageExt(link, imageExts) {
			continue
		}
		refs = append(refs, ImageRef{ID: link, URL: link, Category: category})
	}
	return refs, nil
}

// Fetch implements Source.
func (s *RedditSource) Fetch(ctx context.Context, ref ImageRef) ([]byte, error) {
	return s.get(ctx, "fetch", ref.URL)
}

func (s *RedditSource) get(ctx context.Context, op, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindMalformed, Op: op, URL: u, Err: err}
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransient, Op: op, URL: u, Err: err}
	}
	defer resp.Body.Close()

	if kind, bad := classifyStatus(resp.StatusCode); bad {
		return nil, &FetchError{Kind: kind, Op: op, URL: u, Err: fmt.Errorf("status %s", resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, &FetchError{Kind: KindTransient, Op: op, URL: u, Err: err}
	}
	return body, nil
}

// classifyStatus maps a non-2xx status to an error kind.
func classifyStatus(code int) (ErrorKind, bool) {
	switch {
	case code >= 200 && code < 300:
		return 0, false
	case code == http.StatusTooManyRequests:
		return KindRateLimited, true
	case code >= 500:
		return KindTransient, true
	default:
		return KindMalformed, true
	}
}
