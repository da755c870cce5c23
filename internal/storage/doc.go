// Package storage persists movie catalogs in a single flat file.
//
// Backend is the data-access contract the command layer depends on. FileStore
// implements it for both supported formats by pairing a path with a Codec: the
// CSV codec writes a header row followed by one row per movie, and the JSON
// codec writes one pretty-printed object keyed by title. Every read loads the
// whole file and every mutation rewrites it; there is no index and no lock.
//
// Storage never prompts. Callers resolve fuzzy titles and collect notes before
// invoking a mutation.
package storage
