package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/carousel/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("finds works data-attrid container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-attrid="kc:/visual_art/visual_artist:works" id="carousel"><a href="/x"><img alt="x"></a></div>
</body></html>`

		l := goquery.NewLocator()
		sel, signature, ok := l.Locate(parseDoc(t, html))

		require.True(t, ok)
		assert.Equal(t, "works-attrid", signature)
		id, _ := sel.Attr("id")
		assert.Equal(t, "carousel", id)
	})

	t.Run("finds generic artworks data-attrid container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-attrid="some_artworks_block" id="generic"></div>
</body></html>`

		l := goquery.NewLocator()
		sel, signature, ok := l.Locate(parseDoc(t, html))

		require.True(t, ok)
		assert.Equal(t, "artworks-attrid", signature)
		id, _ := sel.Attr("id")
		assert.Equal(t, "generic", id)
	})

	t.Run("finds scrolling carousel tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><g-scrolling-carousel><a href="/x"><img alt="x"></a></g-scrolling-carousel></body></html>`

		l := goquery.NewLocator()
		_, signature, ok := l.Locate(parseDoc(t, html))

		require.True(t, ok)
		assert.Equal(t, "scrolling-carousel-tag", signature)
	})

	t.Run("finds jscontroller marker", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div jscontroller="HPVvwb" id="jc"></div></body></html>`

		l := goquery.NewLocator()
		sel, signature, ok := l.Locate(parseDoc(t, html))

		require.True(t, ok)
		assert.Equal(t, "jscontroller-marker", signature)
		id, _ := sel.Attr("id")
		assert.Equal(t, "jc", id)
	})

	t.Run("finds jsname marker", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div jsname="GZq3Ke" id="jn"></div></body></html>`

		l := goquery.NewLocator()
		sel, signature, ok := l.Locate(parseDoc(t, html))

		require.True(t, ok)
		assert.Equal(t, "jsname-marker", signature)
		id, _ := sel.Attr("id")
		assert.Equal(t, "jn", id)
	})

	t.Run("works match wins over generic artworks match regardless of document order", func(t *testing.T) {
		t.Parallel()

		// The generic artworks container comes first in the document; the
		// works-attrid signature is earlier in the priority list and must
		// still win.
		html := `<html><body>
<div data-attrid="old_artworks_grid" id="generic"></div>
<div data-attrid="kc:/visual_art/visual_artist:works" id="specific"></div>
</body></html>`

		l := goquery.NewLocator()
		sel, signature, ok := l.Locate(parseDoc(t, html))

		require.True(t, ok)
		assert.Equal(t, "works-attrid", signature)
		id, _ := sel.Attr("id")
		assert.Equal(t, "specific", id)
	})

	t.Run("attrid match wins over carousel tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<g-scrolling-carousel id="tag"></g-scrolling-carousel>
<div data-attrid="kc:/visual_art/visual_artist:works" id="attrid"></div>
</body></html>`

		l := goquery.NewLocator()
		sel, signature, ok := l.Locate(parseDoc(t, html))

		require.True(t, ok)
		assert.Equal(t, "works-attrid", signature)
		id, _ := sel.Attr("id")
		assert.Equal(t, "attrid", id)
	})

	t.Run("no container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="results"><a href="/x">plain link</a></div></body></html>`

		l := goquery.NewLocator()
		sel, signature, ok := l.Locate(parseDoc(t, html))

		assert.False(t, ok)
		assert.Nil(t, sel)
		assert.Empty(t, signature)
	})

	t.Run("custom signatures replace the defaults", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-attrid="kc:/visual_art/visual_artist:works"></div>
<div class="my-carousel" id="custom"></div>
</body></html>`

		l := goquery.NewLocator(goquery.Signature{Name: "custom", Selector: "div.my-carousel"})
		sel, signature, ok := l.Locate(parseDoc(t, html))

		require.True(t, ok)
		assert.Equal(t, "custom", signature)
		id, _ := sel.Attr("id")
		assert.Equal(t, "custom", id)
	})
}
