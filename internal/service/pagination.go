package service

// Defaults applied when the caller omits paging parameters. The client feed
// relies on the same limit to decide whether more pages exist, so keep the
// two in sync (client.DefaultPageLimit).
const (
	DefaultPage  = 1
	DefaultLimit = 9
)

// PageQuery is a 1-based page request over an ordered collection.
type PageQuery struct {
	Page  int
	Limit int
}

// Normalize clamps the query to valid bounds, substituting defaults for
// zero or negative values.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Offset converts the (already normalized) page number into a row offset.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
