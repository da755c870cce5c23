// Package lookupcache persists successful OMDb lookups in a small SQLite
// database so repeated adds of the same title skip the network.
//
// Entries are keyed by the case-folded query title and expire after the
// configured TTL. The cache is strictly advisory: CachedClient logs cache
// failures and falls through to the wrapped client, so a broken cache file
// never blocks a lookup.
package lookupcache
