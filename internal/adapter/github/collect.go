package github

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// collectSequential fetches every page of given resource one by one.
// Page i is appended before page i+1 is requested.
func collectSequential[T record](ctx context.Context, c *Client, path string) ([]T, error) {
	last, err := c.lastPage(ctx, path)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, c.perPage)
	for page := 1; page <= last; page++ {
		c.l.Debugf("fetching %s page %d/%d", path, page, last)
		pageItems, err := fetchPage[T](ctx, c, path, page)
		if err != nil {
			return nil, err
		}
		items = append(items, pageItems...)
	}

	return items, nil
}

// collectConcurrent fetches every page of given resource concurrently.
// Result keeps page order. First failed page cancels the rest and fails the whole collection.
func collectConcurrent[T record](ctx context.Context, c *Client, path string) ([]T, error) {
	last, err := c.lastPage(ctx, path)
	if err != nil {
		return nil, err
	}

	pages := make([][]T, last)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.pageConcurrency)
	for page := 1; page <= last; page++ {
		page := page
		g.Go(func() error {
			c.l.Debugf("fetching %s page %d/%d", path, page, last)
			pageItems, err := fetchPage[T](gctx, c, path, page)
			if err != nil {
				return err
			}
			pages[page-1] = pageItems
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]T, 0, c.perPage)
	for _, p := range pages {
		items = append(items, p...)
	}

	return items, nil
}
