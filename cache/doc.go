// Package cache deduplicates per-gradient render state by style key.
//
// A renderer that draws many shapes with the same built gradient should
// upload its texture and uniforms once. StyleCache maps a style key (see
// fill.Built.StyleKey) to whatever the renderer derived from it, evicting
// the least recently used entries and reporting evictions so GPU resources
// can be released.
//
// StyleCache is safe for concurrent use. It is sharded by an FNV-1a hash
// of the key to keep lock contention low when several goroutines encode
// draw batches at once.
package cache
