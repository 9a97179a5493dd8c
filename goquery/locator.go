package goquery

import (
	"github.com/PuerkitoBio/goquery"
)

// Signature describes one known carousel markup variant as a CSS
// selector. Signatures are tried in order, so more specific variants must
// come before generic fallbacks.
type Signature struct {
	Name     string
	Selector string
}

// DefaultSignatures lists the carousel variants observed on saved
// search-results pages, most specific first. The data-attrid variants
// identify knowledge-panel carousels ("kc:/visual_art/visual_artist:works"
// and friends); the jscontroller/jsname markers come from the page's
// script framework and act as last-resort fallbacks.
var DefaultSignatures = []Signature{
	{Name: "works-attrid", Selector: `div[data-attrid*=":works"]`},
	{Name: "visual-artist-works-attrid", Selector: `div[data-attrid*="visual_artist:works"]`},
	{Name: "artworks-attrid", Selector: `div[data-attrid*="artworks"]`},
	{Name: "scrolling-carousel-tag", Selector: `g-scrolling-carousel`},
	{Name: "jscontroller-marker", Selector: `div[jscontroller="HPVvwb"]`},
	{Name: "jsname-marker", Selector: `div[jsname="GZq3Ke"]`},
}

// Locator finds the carousel root in a parsed document by trying an
// ordered list of structural signatures.
type Locator struct {
	signatures []Signature
}

// NewLocator creates a Locator. With no arguments it uses
// DefaultSignatures.
func NewLocator(signatures ...Signature) *Locator {
	if len(signatures) == 0 {
		signatures = DefaultSignatures
	}
	return &Locator{signatures: signatures}
}

// Locate returns the first signature match as a single-node selection,
// together with the name of the matching signature. The false return
// signals that no carousel is present; it is not an error.
func (l *Locator) Locate(doc *goquery.Document) (*goquery.Selection, string, bool) {
	for _, sig := range l.signatures {
		if sel := doc.Find(sig.Selector).First(); sel.Length() > 0 {
			return sel, sig.Name, true
		}
	}
	return nil, "", false
}
