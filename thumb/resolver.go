// Package thumb resolves carousel tile thumbnails from raw document text.
package thumb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/carousel"
)

// placeholderPrefix identifies the well-known 1x1 transparent GIF used as
// a lazy-loading placeholder.
const placeholderPrefix = "data:image/gif;base64,R0lGODlhAQABA"

// minDataURLLen filters out tiny placeholder and spacer images.
const minDataURLLen = 500

// DefaultScriptPattern matches the inline-script assignment observed for
// deferred thumbnails: a variable holding a quoted data URI followed by a
// variable named with a run of two or more i's, assigned an array literal
// whose sole element is the image id. The %s placeholder receives the
// quoted image id. Reverse-engineered from one observed page; a fragile
// heuristic, not a contract.
const DefaultScriptPattern = `(?i)var\s*s\s*=\s*'(data:image/[^']+)';\s*var\s*ii+\s*=\s*\['%s'\];`

// dataURLPattern matches base64 image data URIs in raw text. The
// character class is anchored and linear; no backtracking.
var dataURLPattern = regexp.MustCompile(`data:image/(?:jpeg|jpg|png|webp);base64,[A-Za-z0-9+/=]+`)

// Ensure Resolver implements carousel.ThumbnailResolver at compile time.
var _ carousel.ThumbnailResolver = (*Resolver)(nil)

// Resolver implements the three-tier thumbnail fallback: direct inline
// image, script-embedded reference, then the valid data URI closest to
// the first occurrence of the tile's title in the raw document.
type Resolver struct {
	scriptPattern string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithScriptPattern overrides the inline-script pattern used by the
// script-embedded tier. The pattern must contain one %s placeholder for
// the quoted image id and one capture group for the data URI.
func WithScriptPattern(pattern string) Option {
	return func(r *Resolver) { r.scriptPattern = pattern }
}

// NewResolver creates a Resolver with DefaultScriptPattern.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{scriptPattern: DefaultScriptPattern}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the best available thumbnail for the entry, trying each
// tier in turn. The false return means no usable image exists; the record
// is still valid without one.
func (r *Resolver) Resolve(entry carousel.CandidateEntry, html string) (string, bool) {
	if IsValidDataURL(entry.ImageSrc) {
		return entry.ImageSrc, true
	}

	if entry.ImageID != "" {
		if data, ok := r.fromScript(html, entry.ImageID); ok {
			return data, true
		}
	}

	return closestDataURL(html, entry.Title())
}

// IsValidDataURL reports whether a candidate string qualifies as a usable
// thumbnail: an image data URI that is not the 1x1 placeholder and is
// long enough to hold real image data.
func IsValidDataURL(url string) bool {
	if !strings.HasPrefix(url, "data:image/") {
		return false
	}
	if strings.HasPrefix(url, placeholderPrefix) {
		return false
	}
	return len(url) > minDataURLLen
}

// fromScript searches the raw document for an inline-script thumbnail
// assignment referencing id. Captured data is JavaScript-escaped twice on
// the observed pages, so it is unescaped twice; if unescaping fails the
// raw captured text is used instead.
func (r *Resolver) fromScript(html, id string) (string, bool) {
	re, err := regexp.Compile(fmt.Sprintf(r.scriptPattern, regexp.QuoteMeta(id)))
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}

	data := m[1]
	if decoded, err := unescapeTwice(data); err == nil {
		data = decoded
	}
	if !IsValidDataURL(data) {
		return "", false
	}
	return data, true
}

// closestDataURL finds the valid data URI whose start offset is closest
// to the first case-insensitive occurrence of title in the document.
// Nearest-offset is a heuristic: pages where multiple artworks share
// similar titles may pick a neighbouring tile's image.
func closestDataURL(html, title string) (string, bool) {
	if title == "" {
		return "", false
	}
	titleRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(title))
	if err != nil {
		return "", false
	}
	loc := titleRe.FindStringIndex(html)
	if loc == nil {
		return "", false
	}
	anchor := loc[0]

	best, bestDist := "", -1
	for _, m := range dataURLPattern.FindAllStringIndex(html, -1) {
		candidate := html[m[0]:m[1]]
		if !IsValidDataURL(candidate) {
			continue
		}
		dist := m[0] - anchor
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	if bestDist < 0 {
		return "", false
	}
	return best, true
}
