package client

import (
	"context"
	"sync"
)

// DefaultPageLimit matches the server-side default page size; the hasMore
// heuristic only works when both sides agree on the limit.
const DefaultPageLimit = 9

// Feed is an incrementally loaded post list: page 1 via Load, subsequent
// pages appended via LoadMore. hasMore flips false the first time a page
// comes back shorter than the limit — an approximation that undercounts only
// if items are deleted between page loads.
//
// Overlapping LoadMore calls are collapsed: while one request is in flight,
// further triggers return immediately without issuing a duplicate request.
type Feed struct {
	client *Client
	limit  int

	mu      sync.Mutex
	loading bool
	page    int
	posts   []Post
	hasMore bool
}

// NewFeed builds a feed over the given client. A non-positive limit falls
// back to DefaultPageLimit.
func NewFeed(c *Client, limit int) *Feed {
	if limit < 1 {
		limit = DefaultPageLimit
	}
	return &Feed{client: c, limit: limit, hasMore: true}
}

// Load resets the feed and fetches the first page.
func (f *Feed) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	f.mu.Unlock()

	posts, err := f.client.Posts(ctx, 1, f.limit)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		return err
	}
	f.page = 1
	f.posts = posts
	f.hasMore = len(posts) == f.limit
	return nil
}

// LoadMore fetches the next page and appends it. A no-op while another load
// is in flight or once the feed is exhausted.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.loading || !f.hasMore || f.page == 0 {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	next := f.page + 1
	f.mu.Unlock()

	posts, err := f.client.Posts(ctx, next, f.limit)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		// page counter untouched, so a retry re-requests the same page
		return err
	}
	f.page = next
	f.posts = append(f.posts, posts...)
	if len(posts) < f.limit {
		f.hasMore = false
	}
	return nil
}

// Posts returns a copy of the loaded posts in feed order.
func (f *Feed) Posts() []Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Post, len(f.posts))
	copy(out, f.posts)
	return out
}

// HasMore reports whether another page is believed to exist.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// Loading reports whether a fetch is currently in flight.
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}
