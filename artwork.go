package carousel

import "strings"

// DefaultOrigin is the scheme+host prefix a record link must carry to be
// considered an on-site result link. Implementations receive the origin
// as explicit configuration rather than reading it as ambient state.
const DefaultOrigin = "https://www.google.com"

// Artwork represents one extracted carousel tile. It is the only
// externally visible entity; the JSON representation carries exactly the
// keys name, extensions, link and image.
type Artwork struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	Link       string   `json:"link"`
	Image      *string  `json:"image"`
}

// Validate returns an error if the artwork contains invalid fields.
// Name and an on-origin link are required; extensions and image are
// best-effort.
func (a *Artwork) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "artwork name required")
	}
	if !strings.HasPrefix(a.Link, DefaultOrigin) {
		return Errorf(EINVALID, "artwork link must start with %s", DefaultOrigin)
	}
	return nil
}

// CandidateEntry is one clickable tile (anchor + image) inside the
// carousel, before validation. It carries the raw attribute values the
// thumbnail resolver needs; it is not part of the output.
type CandidateEntry struct {
	Href     string // anchor href, relative or absolute
	Label    string // anchor aria-label
	Alt      string // image alt text
	Text     string // anchor visible text, space-joined
	ImageSrc string // image src attribute
	ImageID  string // image id attribute
}

// Title returns the best available display text for the entry: the
// accessible label, the image alt text, or the anchor text, whichever is
// non-empty first.
func (e CandidateEntry) Title() string {
	for _, s := range []string{e.Label, e.Alt, e.Text} {
		if t := strings.TrimSpace(s); t != "" {
			return t
		}
	}
	return ""
}

// ArtworkExtractor extracts artwork records from a saved search-results
// page.
type ArtworkExtractor interface {
	// ExtractArtworks parses raw HTML and returns records in document
	// order. A page without a recognizable carousel yields an empty,
	// non-error result.
	ExtractArtworks(html string) ([]*Artwork, error)
}

// ThumbnailResolver produces the best available image representation for
// a candidate entry, or reports that none exists. Implementations may
// consult the raw document text for script-embedded images.
type ThumbnailResolver interface {
	Resolve(entry CandidateEntry, html string) (string, bool)
}
