// Package fs writes extraction results to the local filesystem.
package fs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/carousel"
)

// WriteArtworks writes records as an indented JSON array at path. Each
// record serializes with exactly the keys name, extensions, link and
// image; a missing thumbnail renders as null. An empty or nil record list
// produces an empty JSON array, not null. The write is atomic: content
// goes to a temporary file in the target directory which is renamed over
// the destination.
func WriteArtworks(path string, artworks []*carousel.Artwork) error {
	if artworks == nil {
		artworks = []*carousel.Artwork{}
	}
	for _, a := range artworks {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(artworks); err != nil {
		return carousel.Errorf(carousel.EINTERNAL, "failed to encode artworks: %v", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
