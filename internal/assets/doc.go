// Package assets copies the media files of a pack into its staged layout.
//
// Audio files keep their original names under sounds/records, textures are
// renamed to record_<id>.png under textures/items, and an optional
// thumbnail becomes pack.png at the layout root. Media is treated as
// opaque bytes.
package assets
