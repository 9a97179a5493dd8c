// Package carousel extracts structured artwork records from saved Google
// search-results pages that contain an artist-artworks carousel (for
// example "Van Gogh paintings"). It locates the carousel among several
// known markup variants, builds one record per tile, and resolves each
// tile's thumbnail image through a layered fallback strategy.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, thumb/, fs/).
package carousel
