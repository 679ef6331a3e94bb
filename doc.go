// Package wmf2svg converts Windows Metafile (WMF) records into SVG XML.
//
// A WMF file is a sequence of variable-length records describing a stateful
// 2D drawing session: coordinate mappings, graphic objects (pens, brushes,
// fonts) created and selected over time, and drawing primitives that depend
// on the current device context. Convert interprets that record stream
// single-pass and emits an equivalent SVG fragment, skipping records it
// cannot fully honor rather than failing the whole conversion.
//
// The package does not attempt pixel-accurate fidelity with GDI rendering,
// does not decode embedded raster images (bitmap records are skipped), and
// does not implement the companion Enhanced Metafile (EMF) format.
package wmf2svg
