package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultFetchTimeout = 30 * time.Second

type OutageDataProvider struct {
	feedURL  string
	timeout  time.Duration
	loadFeed func(context.Context, string) ([]byte, error)
}

func NewOutageDataProvider(feedURL string, timeout time.Duration) *OutageDataProvider {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &OutageDataProvider{
		feedURL:  feedURL,
		timeout:  timeout,
		loadFeed: loadFeed,
	}
}

// Feed downloads and decodes the region feed.
// Returns ErrNoScheduleAvailable when the feed has no fact section.
func (p *OutageDataProvider) Feed(ctx context.Context) (Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	body, err := p.loadFeed(ctx, p.feedURL)
	if err != nil {
		return Feed{}, fmt.Errorf("load outage feed: %w", err)
	}

	var res Feed
	if err = json.Unmarshal(body, &res); err != nil {
		return Feed{}, fmt.Errorf("decode outage feed: %w", err)
	}
	if res.Fact == nil || res.Fact.Data == nil {
		return res, ErrNoScheduleAvailable
	}

	return res, nil
}

func loadFeed(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get feed from url=%s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get feed from url=%s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get feed from url=%s: status=%s", url, resp.Status)
	}

	var res bytes.Buffer
	_, err = res.ReadFrom(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed from url=%s: %w", url, err)
	}

	return res.Bytes(), nil
}
