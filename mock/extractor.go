package mock

import "github.com/fwojciec/carousel"

var _ carousel.ArtworkExtractor = (*ArtworkExtractor)(nil)

// ArtworkExtractor is a mock implementation of carousel.ArtworkExtractor.
type ArtworkExtractor struct {
	ExtractArtworksFn func(html string) ([]*carousel.Artwork, error)
}

func (e *ArtworkExtractor) ExtractArtworks(html string) ([]*carousel.Artwork, error) {
	return e.ExtractArtworksFn(html)
}
