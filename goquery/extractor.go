package goquery

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/carousel"
	"golang.org/x/net/html"
)

// Ensure Extractor implements carousel.ArtworkExtractor at compile time.
var _ carousel.ArtworkExtractor = (*Extractor)(nil)

// Extractor implements the extraction pipeline on top of a goquery
// document: locate the carousel, enumerate its anchor tiles in document
// order, resolve each tile's thumbnail, and drop entries that fail
// validation. Each call parses its own document; concurrent calls on
// different inputs are safe.
type Extractor struct {
	locator  *Locator
	resolver carousel.ThumbnailResolver
	origin   string
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOrigin overrides the origin used for link resolution and the
// on-site link check. Defaults to carousel.DefaultOrigin.
func WithOrigin(origin string) Option {
	return func(e *Extractor) { e.origin = origin }
}

// WithLocator overrides the container locator.
func WithLocator(locator *Locator) Option {
	return func(e *Extractor) { e.locator = locator }
}

// WithLogger overrides the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) { e.logger = logger }
}

// NewExtractor creates an Extractor that fills thumbnails through the
// given resolver.
func NewExtractor(resolver carousel.ThumbnailResolver, opts ...Option) *Extractor {
	e := &Extractor{
		locator:  NewLocator(),
		resolver: resolver,
		origin:   carousel.DefaultOrigin,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractArtworks parses raw HTML and returns records in document order.
// A page without a recognizable carousel yields an empty, non-error
// result. No deduplication is performed: a visually repeated artwork
// yields repeated records.
func (e *Extractor) ExtractArtworks(rawHTML string) ([]*carousel.Artwork, error) {
	base, err := url.Parse(e.origin)
	if err != nil {
		return nil, carousel.Errorf(carousel.EINVALID, "invalid origin %q: %v", e.origin, err)
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, carousel.Errorf(carousel.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	container, signature, ok := e.locator.Locate(doc)
	if !ok {
		e.logger.Info("no carousel container found")
		return []*carousel.Artwork{}, nil
	}
	e.logger.Debug("carousel container located", "signature", signature)

	artworks := []*carousel.Artwork{}
	container.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		img := a.Find("img").First()
		if img.Length() == 0 {
			return // not an artwork tile
		}

		entry := carousel.CandidateEntry{
			Href:     a.AttrOr("href", ""),
			Label:    a.AttrOr("aria-label", ""),
			Alt:      img.AttrOr("alt", ""),
			Text:     spacedText(a),
			ImageSrc: strings.TrimSpace(img.AttrOr("src", "")),
			ImageID:  strings.TrimSpace(img.AttrOr("id", "")),
		}
		if entry.Href == "" {
			return
		}

		// The label wins when set, even if it trims to nothing; such an
		// entry is dropped rather than falling back to the alt text.
		name := entry.Label
		if name == "" {
			name = entry.Alt
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}

		link := resolveLink(base, entry.Href)
		if !strings.HasPrefix(link, e.origin) {
			return // off-site or malformed
		}

		extensions := []string{}
		if year, ok := findYear(entry.Text + " " + entry.Label + " " + entry.Alt); ok {
			extensions = append(extensions, year)
		}

		artwork := &carousel.Artwork{
			Name:       name,
			Extensions: extensions,
			Link:       link,
		}
		if image, ok := e.resolver.Resolve(entry, rawHTML); ok {
			artwork.Image = &image
		}
		artworks = append(artworks, artwork)
	})

	return artworks, nil
}

// resolveLink normalizes an anchor href: links with an explicit http or
// https scheme are used verbatim, anything else is resolved against the
// origin. Fragments are preserved.
func resolveLink(base *url.URL, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// spacedText returns the selection's text content with a single space
// between text nodes, so adjacent numeric nodes do not merge into one
// digit run during the year search.
func spacedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return strings.Join(parts, " ")
}
