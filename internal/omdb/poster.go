package omdb

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

const probeLimit = 4

// PosterURL returns poster, or fallback when OMDb has no poster.
func PosterURL(poster, fallback string) string {
	if poster == "" || poster == NotAvailable {
		return fallback
	}
	return poster
}

// ProbePosters checks that every poster in items can be loaded and returns
// the IDs of those that cannot. Items without a poster are skipped; their
// placeholder is chosen by PosterURL.
func (c *Client) ProbePosters(ctx context.Context, items []Item) []string {
	var (
		mu     sync.Mutex
		broken []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(probeLimit)

	for _, item := range items {
		if item.Poster == "" || item.Poster == NotAvailable {
			continue
		}
		g.Go(func() error {
			if !c.posterLoads(ctx, item.Poster) {
				mu.Lock()
				broken = append(broken, item.ImdbID)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	c.logger.Debug().Int("checked", len(items)).Int("broken", len(broken)).Msg("posters probed")
	return broken
}

func (c *Client) posterLoads(ctx context.Context, poster string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, poster, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
