package lookupcache

import (
	"context"
	"log/slog"

	"marquee/internal/logging"
	"marquee/internal/omdb"
)

// Lookuper fetches movie metadata by title.
type Lookuper interface {
	Lookup(ctx context.Context, title string) (*omdb.Movie, error)
}

// CachedClient serves lookups from a Store before delegating to the wrapped
// client. Only successful lookups are cached.
type CachedClient struct {
	next   Lookuper
	store  *Store
	logger *slog.Logger
}

// NewCachedClient wraps next with store. A nil store disables caching.
func NewCachedClient(next Lookuper, store *Store, logger *slog.Logger) *CachedClient {
	return &CachedClient{
		next:   next,
		store:  store,
		logger: logging.NewComponentLogger(logger, "lookupcache"),
	}
}

// Lookup implements Lookuper.
func (c *CachedClient) Lookup(ctx context.Context, title string) (*omdb.Movie, error) {
	if c.store != nil {
		movie, ok, err := c.store.Get(ctx, title)
		switch {
		case err != nil:
			c.logger.Warn("lookup cache read failed",
				logging.String(logging.FieldEventType, "lookup_cache_read_failed"),
				logging.String("title", title),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "falling back to OMDb"))
		case ok:
			c.logger.Debug("lookup cache hit",
				logging.String(logging.FieldEventType, "lookup_cache_hit"),
				logging.String("title", title))
			return movie, nil
		}
	}

	movie, err := c.next.Lookup(ctx, title)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Put(ctx, title, movie); err != nil {
			c.logger.Warn("lookup cache write failed",
				logging.String(logging.FieldEventType, "lookup_cache_write_failed"),
				logging.String("title", title),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "lookup result was not cached"))
		}
	}
	return movie, nil
}
