// Package movies defines the movie record, the ordered catalog that storage
// backends load and persist, and the pure catalog operations the command layer
// builds on: title matching, disambiguation, and rating statistics.
//
// A Catalog keeps titles in encounter order. Loaders insert records in file
// order, so every order-sensitive operation (match listings, stable sorting,
// tie breaking for best and worst) follows the order the user sees on disk.
package movies
