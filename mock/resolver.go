package mock

import "github.com/fwojciec/carousel"

var _ carousel.ThumbnailResolver = (*ThumbnailResolver)(nil)

// ThumbnailResolver is a mock implementation of carousel.ThumbnailResolver.
type ThumbnailResolver struct {
	ResolveFn func(entry carousel.CandidateEntry, html string) (string, bool)
}

func (r *ThumbnailResolver) Resolve(entry carousel.CandidateEntry, html string) (string, bool) {
	return r.ResolveFn(entry, html)
}
